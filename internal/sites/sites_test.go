package sites

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	site, err := Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, "Murano Street Cheviot Laundry", site.Name)
	assert.Equal(t, "https://www.circuit.co.uk/circuit-view/laundry-site/?site=6239", site.URL())

	_, err = Lookup(3)
	assert.ErrorIs(t, err, ErrUnknownSite)
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer

	site, err := Prompt(strings.NewReader("1\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "6240", site.SiteID)
	assert.Contains(t, out.String(), "Supported Laundry Rooms:")
	assert.Contains(t, out.String(), "Murano Street Csb Laundry")
	assert.Contains(t, out.String(), "Select an option: ")
}

func TestPromptWithoutNewline(t *testing.T) {
	site, err := Prompt(strings.NewReader(" 2 "), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 2, site.Option)
}

func TestPromptInvalid(t *testing.T) {
	inputs := []string{"0\n", "3\n", "-1\n", "csb\n", "\n", ""}

	for _, input := range inputs {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			_, err := Prompt(strings.NewReader(input), &bytes.Buffer{})
			assert.ErrorIs(t, err, ErrInvalidSelection)
			assert.Equal(t, "Invalid selection", err.Error())
		})
	}
}

func TestAllIsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"

	site, err := Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "Murano Street Csb Laundry", site.Name)
}
