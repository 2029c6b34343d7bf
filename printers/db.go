package printers

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	eventTypeEntry   = "entry"
	eventTypeSummary = "summary"
)

const (
	dataTableSchema = `CREATE TABLE %s (
    id INTEGER PRIMARY KEY,
    event_type TEXT NOT NULL, -- entry or summary
    timestamp DATETIME,

    stage TEXT,
    name TEXT,
    type TEXT,
    present INTEGER,
    value TEXT,

    containers INTEGER,
    present_before INTEGER,
    present_after INTEGER,
    items_before INTEGER,
    items_after INTEGER,
    views INTEGER,

    start_time DATETIME,
    end_time DATETIME,
    total_duration TEXT
	);`

	entrySaveSchema = `INSERT INTO %s (
	event_type,
	timestamp,
	stage,
	name,
	type,
	present,
	value) VALUES (?, ?, ?, ?, ?, ?, ?);`

	summarySaveSchema = `INSERT INTO %s (
	event_type,
	timestamp,
	containers,
	present_before,
	present_after,
	items_before,
	items_after,
	views,
	start_time,
	end_time,
	total_duration) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
)

// DatabasePrinter represents a SQLite database connection for storing walkthrough results.
type DatabasePrinter struct {
	Conn      *sqlite.Conn
	DbPath    string
	TableName string
}

// NewDatabasePrinter opens (or creates) the database and creates the data table for this run.
func NewDatabasePrinter(title, dbPath string) (*DatabasePrinter, error) {
	filename := addDbExtension(dbPath)

	conn, err := sqlite.OpenConn(filename, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("create database %q: %w", filename, err)
	}

	tableName := sanitizeTableName(title, time.Now())

	err = sqlitex.Execute(conn, fmt.Sprintf(dataTableSchema, tableName), &sqlitex.ExecOptions{})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create data table: %w", err)
	}

	return &DatabasePrinter{Conn: conn, DbPath: filename, TableName: tableName}, nil
}

func addDbExtension(filename string) string {
	if strings.HasSuffix(filename, ".db") {
		return filename
	}

	return filename + ".db"
}

// sanitizeTableName formats the table name as "title__year_month_day_hour_minute_sec".
// Table names can't contain anything but letters, digits and '_' and can't start with a digit.
func sanitizeTableName(title string, now time.Time) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return '_'
		}, s)
	}

	tableName := fmt.Sprintf("%s__%s", clean(title), clean(now.Format(TimeFormat)))

	if unicode.IsDigit(rune(tableName[0])) {
		tableName = "_" + tableName
	}

	return tableName
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// PrintStart prints where the results are being saved.
func (db *DatabasePrinter) PrintStart(title string) {
	fmt.Printf("Walking through %s - saving results to: %s\n", title, db.DbPath)
}

// PrintEntry stores one container snapshot.
func (db *DatabasePrinter) PrintEntry(e report.Entry) {
	err := sqlitex.Execute(db.Conn, fmt.Sprintf(entrySaveSchema, db.TableName), &sqlitex.ExecOptions{
		Args: []any{
			eventTypeEntry,
			time.Now().Format(TimeFormat),
			string(e.Stage),
			e.Name,
			e.Type,
			boolToInt(e.Present),
			e.Value,
		},
	})
	if err != nil {
		db.PrintError("save entry %s: %v", e.Name, err)
	}
}

// PrintItems satisfies the "printer" interface but does nothing in this implementation
func (db *DatabasePrinter) PrintItems(_ report.Stage, _ []string) {}

// PrintView satisfies the "printer" interface but does nothing in this implementation
func (db *DatabasePrinter) PrintView(_ render.Node) {}

// PrintSummary stores the walkthrough totals.
func (db *DatabasePrinter) PrintSummary(s *report.Summary) {
	err := sqlitex.Execute(db.Conn, fmt.Sprintf(summarySaveSchema, db.TableName), &sqlitex.ExecOptions{
		Args: []any{
			eventTypeSummary,
			time.Now().Format(TimeFormat),
			s.Containers,
			s.PresentBefore,
			s.PresentAfter,
			s.ItemsBefore,
			s.ItemsAfter,
			s.Views,
			s.StartTime.Format(TimeFormat),
			s.EndTime.Format(TimeFormat),
			s.Duration().String(),
		},
	})
	if err != nil {
		db.PrintError("save summary: %v", err)
		return
	}

	fmt.Printf("\nSummary saved to %s in table %s\n", db.DbPath, db.TableName)
}

// PrintError prints an error message to stderr.
func (db *DatabasePrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Done closes the database connection.
func (db *DatabasePrinter) Done() error {
	return db.Conn.Close()
}
