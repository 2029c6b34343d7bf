package accepted

import "github.com/callmeBron/generics"

var _ = generics.NewView("Generic view", generics.Text("plain string"))
