package rules

import (
	"github.com/donaldgifford/memberfmt/internal/rules/order"
)

func init() {
	Register(order.New(order.DefaultDescriptor))
}
