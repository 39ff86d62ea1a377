package views

import (
	"fmt"
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/el"
	"github.com/domkit-dev/domkit/pkg/signal"
)

// LoginState is the login page's model. It outlives the page, so a user
// returning to /login sees what they typed.
type LoginState struct {
	Name     *signal.Signal[string]
	Greeting *signal.Signal[string]
}

// NewLoginState returns an empty login model.
func NewLoginState() *LoginState {
	s := &LoginState{
		Name:     signal.New(""),
		Greeting: signal.New(greeting("")),
	}
	s.Name.Subscribe(func() {
		s.Greeting.Set(greeting(s.Name.Get()))
	})
	return s
}

func greeting(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Hello, stranger"
	}
	return "Hello, " + name
}

// Login is the "/login" page: a name field whose value is echoed live in a
// heading. Submitting returns to the landing page.
func Login(b *el.Builder, state *LoginState, navigate Navigate) func() dom.Node {
	return func() dom.Node {
		return b.Div(el.Attrs{"style": el.Style{"padding": "24px"}},
			b.H1(nil, state.Greeting),
			b.Form(el.Attrs{
				el.OnSubmit: func(ev dom.Event) {
					ev.PreventDefault()
					navigate("/")
				},
			},
				b.Label(el.Attrs{"htmlFor": "login-name"}, "Name"),
				b.Input(el.Attrs{
					"id":              "login-name",
					"type":            "text",
					"value":           state.Name,
					el.Aria("label"):  "Name",
					el.Data("testid"): "login-name",
					el.OnInput: func(ev dom.Event) {
						if v, ok := ev.Target().Property("value"); ok {
							state.Name.Set(fmt.Sprint(v))
						}
					},
				}),
				b.Button(el.Attrs{"type": "submit"}, "Continue"),
			),
			b.P(nil, "You typed: ", state.Name),
		)
	}
}
