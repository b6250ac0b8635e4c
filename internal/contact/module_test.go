package contact

import (
	"testing"

	"github.com/shandysiswandi/portfolio/internal/contact/entity"
	"github.com/shandysiswandi/portfolio/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFromConfig(t *testing.T) {
	t.Setenv("EMAIL_PASSWORD", "from-env")

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
app:
  version: "1.2.3"
mail:
  sender: " site@example.com "
  receiver: owner@example.com
contact:
  max_name: 40
  max_email: 100
  max_message: 1000
`), config.WithEnv(map[string]string{"mail.password": "EMAIL_PASSWORD"}))
	require.NoError(t, err)

	assert.Equal(t, entity.Settings{
		Sender:   "site@example.com",
		Password: "from-env",
		Receiver: "owner@example.com",
		Limits:   entity.Limits{Name: 40, Email: 100, Message: 1000},
		Version:  "1.2.3",
	}, SettingsFromConfig(cfg))
}
