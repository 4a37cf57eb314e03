package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// Marshal serializes a GeneratedLayout to pretty-printed JSON bytes.
func Marshal(l GeneratedLayout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a GeneratedLayout and checks that
// every element carries a known type.
func Unmarshal(data []byte) (GeneratedLayout, error) {
	var l GeneratedLayout
	if err := json.Unmarshal(data, &l); err != nil {
		return GeneratedLayout{}, err
	}
	for i, e := range l.Elements {
		if !e.Type.Valid() {
			return GeneratedLayout{}, fmt.Errorf("element %d (%s): unknown type %q", i, e.ID, e.Type)
		}
	}
	return l, nil
}

// Write writes a layout as JSON to an io.Writer.
func Write(l GeneratedLayout, w io.Writer) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteFile writes a layout to a JSON file with 0644 permissions.
func WriteFile(l GeneratedLayout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads and decodes a layout JSON file.
func ReadFile(path string) (GeneratedLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GeneratedLayout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// =============================================================================
// Fingerprint
// =============================================================================

// Fingerprint returns a stable SHA-256 hex digest of the request with its
// seed excluded. Two configs with the same fingerprint and seed produce
// identical layouts.
func (c Config) Fingerprint() string {
	c.Seed = nil
	data, _ := json.Marshal(c)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// idNamespace scopes layout ids so they never collide with other SHA-1 UUIDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/vibegrid/layout"))

// NewID returns the layout id for a request fingerprint and seed. The id is
// a name-based UUID, so regenerating the same layout yields the same id.
func NewID(fingerprint string, seed float64) string {
	name := fingerprint + ":" + strconv.FormatFloat(seed, 'g', -1, 64)
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}
