package rejected

import "github.com/callmeBron/generics"

var _ = generics.NewView("Generic view", "plain string")
