package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	tests := []struct {
		data    string
		key     string
		payload string
	}{
		{`\fprod|xbox-series-x`, "prod", "xbox-series-x"},
		{`\fsort|consoles:price_asc`, "sort", "consoles:price_asc"},
		{`\ffav_clear`, "fav_clear", ""},
		{`prod|id`, "prod", "id"},
		{``, "", ""},
	}
	for _, tt := range tests {
		key, payload := ParseCallbackData(&tele.Callback{Data: tt.data})
		assert.Equal(t, tt.key, key, "data %q", tt.data)
		assert.Equal(t, tt.payload, payload, "data %q", tt.data)
	}
}

func TestParseCallbackDataNil(t *testing.T) {
	key, payload := ParseCallbackData(nil)
	assert.Empty(t, key)
	assert.Empty(t, payload)
}
