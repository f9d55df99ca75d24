// Command chi demonstrates ruling with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:8080/openapi.json in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/ruling"
	"github.com/Gobd/ruling/is"
	"github.com/Gobd/ruling/openapi"
	"github.com/go-chi/chi/v5"
)

type Signup struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

var (
	username = ruling.Select("username", func(s *Signup) string { return s.Username })
	email    = ruling.Select("email", func(s *Signup) string { return s.Email })
	password = ruling.Select("password", func(s *Signup) string { return s.Password })
	confirm  = ruling.Select("confirm", func(s *Signup) string { return s.Confirm })

	signupRules = []ruling.Rule[*Signup]{
		ruling.Required(username),
		is.Alphanumeric(username),
		ruling.Required(email),
		is.Email(email),
		ruling.MustLength(password, ruling.LengthBounds{Min: ruling.Int(12)}),
		ruling.EqualTo(confirm, ruling.From(func(s *Signup) string { return s.Password }),
			ruling.WithMessage("must match the password")),
	}

	// Username problems are reported before anything else is checked.
	validateSignup = ruling.CombineRulingsFailFast(
		ruling.CreateRuling(signupRules[:2]...),
		ruling.CreateRuling(signupRules[2:]...),
	)
)

func main() {
	doc := openapi.DocBase("Example API (chi)", "Demonstrates ruling with chi", "0.1.0")

	openapi.Post(doc, "/signup", "signup", openapi.Endpoint{
		Summary:   "Create an account",
		Request:   ruling.MustSchema(signupRules...),
		Validated: true,
		Responses: map[string]openapi.Response{
			"204": {Desc: "Account created"},
		},
	})

	r := chi.NewRouter()

	r.Handle("/openapi.json", openapi.SpecHandlerMust(doc))

	r.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		var s Signup
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if res := validateSignup(&s); !res.Valid() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(res)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
