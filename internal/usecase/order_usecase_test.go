package usecase

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The order-creation payload is flat: address fields sit at the top
// level next to store_uuid and items, and items carry product_uuid.
func TestCreateOrderInput_BindsFlatPayload(t *testing.T) {
	productID := uuid.New()
	storeID := uuid.New()
	accountID := uuid.New()

	payload := `{
		"store_uuid": "` + storeID.String() + `",
		"account_uuid": "` + accountID.String() + `",
		"items": [{"product_uuid": "` + productID.String() + `", "quantity": 2}],
		"notes": "ring the bell",
		"zip_code": "01310100",
		"street": "Avenida Paulista",
		"number": "1000",
		"neighborhood": "Bela Vista",
		"city": "São Paulo",
		"state": "SP"
	}`

	var input CreateOrderInput
	require.NoError(t, json.Unmarshal([]byte(payload), &input))

	assert.Equal(t, storeID, input.StoreID)
	assert.Equal(t, accountID, input.AccountID)
	require.Len(t, input.Items, 1)
	assert.Equal(t, productID, input.Items[0].ProductID)
	assert.Equal(t, 2, input.Items[0].Quantity)
	assert.Equal(t, "01310100", input.ZipCode)
	assert.Equal(t, "Avenida Paulista", input.Street)
	assert.Equal(t, "1000", input.Number)
	assert.Equal(t, "São Paulo", input.City)
	assert.Equal(t, "SP", input.State)
}

func TestCreateOrderInput_RoundTripsFlat(t *testing.T) {
	input := CreateOrderInput{
		StoreID:   uuid.New(),
		AccountID: uuid.New(),
		Items: []CartItemInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
		DeliveryAddressInput: DeliveryAddressInput{
			ZipCode: "01310100",
			Street:  "Avenida Paulista",
			Number:  "1000",
			City:    "São Paulo",
			State:   "SP",
		},
	}

	raw, err := json.Marshal(input)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "zip_code")
	assert.Contains(t, decoded, "street")
	assert.NotContains(t, decoded, "address")
}

func TestCreateOrderInput_Validation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	valid := func() CreateOrderInput {
		return CreateOrderInput{
			StoreID:   uuid.New(),
			AccountID: uuid.New(),
			Items: []CartItemInput{
				{ProductID: uuid.New(), Quantity: 1},
			},
			DeliveryAddressInput: DeliveryAddressInput{
				ZipCode: "01310100",
				Street:  "Avenida Paulista",
				Number:  "1000",
				City:    "São Paulo",
				State:   "SP",
			},
		}
	}

	t.Run("valid payload passes", func(t *testing.T) {
		input := valid()
		assert.NoError(t, validate.Struct(&input))
	})

	t.Run("zero item quantity is rejected", func(t *testing.T) {
		input := valid()
		input.Items[0].Quantity = 0
		assert.Error(t, validate.Struct(&input))
	})

	t.Run("missing item product id is rejected", func(t *testing.T) {
		input := valid()
		input.Items[0].ProductID = uuid.Nil
		assert.Error(t, validate.Struct(&input))
	})

	t.Run("missing city is rejected", func(t *testing.T) {
		input := valid()
		input.City = ""
		assert.Error(t, validate.Struct(&input))
	})

	t.Run("missing state is rejected", func(t *testing.T) {
		input := valid()
		input.State = ""
		assert.Error(t, validate.Struct(&input))
	})
}
