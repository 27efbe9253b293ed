package proof

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFingerprintGolden pins the digest of a representative batch payload so
// the canonical form cannot drift silently.
func TestFingerprintGolden(t *testing.T) {
	payload := map[string]any{
		"type":               "manufacturing_batch",
		"campaign_id":        int64(1),
		"batch_id":           int64(7),
		"batch_number":       "B-001",
		"manufactured_count": int64(500),
	}
	require.Equal(t,
		"38bb7d817c847771b19611d3ec05db54ae4281174123610f154dcd378a9103a9",
		Fingerprint(payload))
}

func TestFingerprintNestedGolden(t *testing.T) {
	payload := map[string]any{
		"a": 1,
		"b": "x",
		"nested": map[string]any{
			"z": true,
			"a": []int{1, 2, 3},
		},
	}
	require.Equal(t,
		"9c5aaa167af7d91440dd0a7404e685be1f60d7fb2f11e6d928fed12d283da351",
		Fingerprint(payload))
}

// TestFingerprintDeterministic builds the same logical payload several times
// and expects identical digests every time.
func TestFingerprintDeterministic(t *testing.T) {
	build := func() map[string]any {
		m := map[string]any{}
		m["distributed_count"] = int64(50)
		m["location"] = "A"
		m["type"] = "distribution"
		m["campaign_id"] = int64(3)
		m["distribution_id"] = int64(12)
		return m
	}
	first := Fingerprint(build())
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Fingerprint(build()))
	}
}

func TestFingerprintDiffersOnAnyChange(t *testing.T) {
	base := map[string]any{"type": "daily_activity", "campaign_id": int64(1), "manufactured_today": int64(100)}
	ref := Fingerprint(base)

	changedValue := map[string]any{"type": "daily_activity", "campaign_id": int64(1), "manufactured_today": int64(101)}
	assert.NotEqual(t, ref, Fingerprint(changedValue))

	changedKey := map[string]any{"type": "daily_activity", "campaign_id": int64(1), "distributed_today": int64(100)}
	assert.NotEqual(t, ref, Fingerprint(changedKey))

	extraKey := map[string]any{"type": "daily_activity", "campaign_id": int64(1), "manufactured_today": int64(100), "scan_count_today": int64(0)}
	assert.NotEqual(t, ref, Fingerprint(extraKey))
}

func TestFingerprintShape(t *testing.T) {
	got := Fingerprint(map[string]any{"k": "v"})
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), got)
}
