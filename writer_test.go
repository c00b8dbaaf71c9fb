package emojidata

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func TestMarshal(t *testing.T) {
	t.Run("two space indentation with one element per line", func(t *testing.T) {
		records := []*Record{
			{Fields: []Field{{Key: "a", Raw: "1"}, {Key: "b", Raw: "[1,2]"}}},
			{Fields: []Field{{Key: "c", Raw: "{}"}, {Key: "d", Raw: "[]"}, {Key: "char", Raw: `"😀"`}}},
		}

		b, err := Marshal(records)
		require.NoError(t, err)

		expected := `[
  {
    "a": 1,
    "b": [
      1,
      2
    ]
  },
  {
    "c": {},
    "d": [],
    "char": "😀"
  }
]`
		assert.Equal(t, expected, string(b))
	})

	t.Run("empty list", func(t *testing.T) {
		b, err := Marshal(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	})

	t.Run("reformatting the output gives identical bytes", func(t *testing.T) {
		src, err := os.ReadFile("./__fixtures__/emoji_sample.json")
		require.NoError(t, err)

		records, err := LoadDataset(src)
		require.NoError(t, err)

		out, err := Transform(records, DefaultDenylist())
		require.NoError(t, err)

		b, err := Marshal(out)
		require.NoError(t, err)
		require.True(t, json.Valid(b))

		assert.Equal(t, string(b), string(Format(b)))

		compact, err := Normalize(b)
		require.NoError(t, err)
		assert.Equal(t, string(b), string(Format(compact)))

		reloaded, err := LoadDataset(b)
		assert.Error(t, err, "sort_order is stripped, so the artifact is not a source dataset")
		assert.Nil(t, reloaded)

		var decoded []map[string]interface{}
		require.NoError(t, json.Unmarshal(b, &decoded))
		require.Len(t, decoded, 5)
		assert.Equal(t, "😀", decoded[0]["char"])
		assert.Equal(t, "\U0001F1FA\U0001F1F8", decoded[4]["char"])
	})
}

func TestMarshal_RoundTrip(t *testing.T) {
	records := loadRecords(t, `[{
		"name": "caf\u00e9 \/ x",
		"unified": "1F600",
		"sort_order": 1.0,
		"sheet_x": 1e1,
		"sheet_y": 2.50,
		"tiny": 1E-7,
		"big": 1e21,
		"small": 0.000001,
		"negative_zero": -0,
		"text": "\ud83d\ude00",
		"short_names": [ "grinning" , "tab\tbed" ],
		"skin_variations": {"1F3FB": {"unified": "1F600-1F3FB", "image": "a\u0001b"}}
	}]`)

	out, err := Transform(records, DefaultDenylist())
	require.NoError(t, err)

	b, err := Marshal(out)
	require.NoError(t, err)

	expected := `[
  {
    "name": "café / x",
    "unified": "1F600",
    "sheet_x": 10,
    "sheet_y": 2.5,
    "tiny": 1e-7,
    "big": 1e+21,
    "small": 0.000001,
    "negative_zero": 0,
    "short_names": [
      "grinning",
      "tab\tbed"
    ],
    "skin_variations": {
      "1F3FB": {
        "unified": "1F600-1F3FB",
        "image": "a\u0001b"
      }
    },
    "char": "😀"
  }
]`
	assert.Equal(t, expected, string(b))

	compact, err := Normalize(b)
	require.NoError(t, err)
	assert.Equal(t, string(b), string(Format(compact)))
}

func TestDigest(t *testing.T) {
	a := Digest([]byte("[]"))
	assert.Equal(t, a, Digest([]byte("[]")))
	assert.NotEqual(t, a, Digest([]byte("[ ]")))
}
