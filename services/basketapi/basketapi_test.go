package basketapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/basketbackend/lib/myerrors"
)

func TestNewAddItemFromValues(t *testing.T) {
	testCases := []struct {
		name        string
		values      url.Values
		expectError bool
		expected    AddItem
	}{
		{
			name:     "Complete",
			values:   url.Values{"productUid": {"product_tennis_racket"}, "quantity": {"2"}},
			expected: AddItem{ProductUID: "product_tennis_racket", Quantity: 2},
		},
		{
			name:     "Quantity defaults to one",
			values:   url.Values{"productUid": {"product_tennis_racket"}},
			expected: AddItem{ProductUID: "product_tennis_racket", Quantity: 1},
		},
		{
			name:        "Missing productUid",
			values:      url.Values{"quantity": {"2"}},
			expectError: true,
		},
		{
			name:        "Zero quantity",
			values:      url.Values{"productUid": {"product_tennis_racket"}, "quantity": {"0"}},
			expectError: true,
		},
		{
			name:        "Negative quantity",
			values:      url.Values{"productUid": {"product_tennis_racket"}, "quantity": {"-3"}},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addItem, err := newAddItemFromValues(tc.values)
			if tc.expectError {
				assert.Error(t, err)
				assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, addItem)
		})
	}
}
