package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateCondition(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"Cer senin", "Clear Sky"},
		{"CER VARIABIL", "Partly Cloudy"},
		{"Cer partial noros", "Partly Cloudy"},
		{"Cer mai mult noros", "Mostly Cloudy"},
		{"Înnorat", "Overcast"},
		{"Ploaie slabă", "Light Rain, Rain"},
		{"Averse, furtună", "Showers, Thunderstorm"},
		{"Lapoviță și ninsoare", "Snow, Sleet"},
		{"Ceață", "Fog"},
		{"vânt puternic", "Vânt Puternic"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateCondition(tt.in))
		})
	}
}
