// Command example serves a validated JSON endpoint and its OpenAPI document.
//
// Run:
//
//	go run ./_example
//
// Then POST an order to http://localhost:8080/orders and read the document at
// http://localhost:8080/openapi.json.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Gobd/ruling"
	"github.com/Gobd/ruling/is"
	"github.com/Gobd/ruling/openapi"
	"github.com/Gobd/ruling/transform"
)

// Customer is the buyer of an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is a sample request/response type.
type Order struct {
	Customer  *Customer  `json:"customer"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
	Coupon    string     `json:"coupon"`
	Placed    time.Time  `json:"placed"`
	Deliver   time.Time  `json:"deliver"`
}

var (
	customerName  = transform.TrimSpace(ruling.Select("name", func(c *Customer) string { return c.Name }))
	customerEmail = ruling.Select("email", func(c *Customer) string { return c.Email })

	customerRules = []ruling.Rule[*Customer]{
		ruling.Required(customerName),
		ruling.MustLength(customerName, ruling.LengthBounds{Max: ruling.Int(200)}),
		ruling.Required(customerEmail),
		is.Email(customerEmail),
	}

	customer  = ruling.Select("customer", func(o *Order) *Customer { return o.Customer })
	itemCount = ruling.Select("item_count", func(o *Order) int { return o.ItemCount })
	total     = ruling.Select("total", func(o *Order) float64 { return o.Total })
	coupon    = transform.ToUpper(ruling.Select("coupon", func(o *Order) string { return o.Coupon }))
	deliver   = ruling.Select("deliver", func(o *Order) time.Time { return o.Deliver })

	orderRules = []ruling.Rule[*Order]{
		ruling.NestedRules(customer, customerRules),
		ruling.MustCompare(itemCount, ruling.Bounds{
			GreaterThanOrEqualTo: ruling.Value(1),
			LessThanOrEqualTo:    ruling.Value(100),
		}),
		ruling.GreaterThan(total, ruling.Value(0.0)),
		ruling.MustFormat(coupon, `^([A-Z]{4}[0-9]{2})?$`, 0),
		ruling.GreaterThan(deliver, ruling.From(func(o *Order) time.Time { return o.Placed }),
			ruling.WithMessage("must be after the order was placed")),
	}

	validateOrder = ruling.CreateRuling(orderRules...)
)

func main() {
	doc := openapi.DocBase("Example API", "Demonstrates ruling", "0.1.0")

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:   "Create an order",
		Request:   ruling.MustSchema(orderRules...),
		Response:  openapi.MustValueSchema(Order{}),
		Validated: true,
	})

	http.Handle("/openapi.json", openapi.SpecHandlerMust(doc))

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var order Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if res := validateOrder(&order); !res.Valid() {
			log.Printf("rejected order: %v", res.Err())
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(res)
			return
		}
		_ = json.NewEncoder(w).Encode(order)
	})

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("OpenAPI: http://localhost:8080/openapi.json")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
