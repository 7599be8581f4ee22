//go:build unit

package response_test

import (
	"testing"

	"ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/usecase/queries"
	"ecommerce-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

// Command and query paths must render the same order identically.
func TestFromOrderAndFromOrderViewAgree(t *testing.T) {
	b := builder.NewOrderBuilder()

	fromDomain := response.FromOrder(b.BuildStored())
	fromView := response.FromOrderView(b.BuildView())

	if diff := cmp.Diff(fromDomain, fromView, decimalComparer); diff != "" {
		t.Errorf("responses diverge (-domain +view):\n%s", diff)
	}
}

func TestFromOrderViewsPreservesInputOrder(t *testing.T) {
	first := builder.NewOrderBuilder().WithEmail("a@example.com")
	second := builder.NewOrderBuilder().WithEmail("b@example.com")

	got := response.FromOrderViews([]*queries.OrderView{first.BuildView(), second.BuildView()})

	want := []*response.OrderResponse{
		response.FromOrderView(first.BuildView()),
		response.FromOrderView(second.BuildView()),
	}
	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("unexpected responses (-want +got):\n%s", diff)
	}
}
