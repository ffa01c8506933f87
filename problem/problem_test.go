package problem_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giftflow/builder"
	"github.com/katalvlaran/giftflow/problem"
)

func TestLoadTestdata(t *testing.T) {
	p, err := problem.Load(filepath.Join("testdata", "five_presents.yaml"))
	require.NoError(t, err)
	require.Len(t, p.Items, 5)
	require.Len(t, p.Recipients, 3)
	require.Equal(t, problem.Recipient{Name: "c3", Wishlist: []string{"p4", "p5"}, MaxAllotment: 3}, p.Recipients[2])

	a, err := p.Build()
	require.NoError(t, err)
	require.Equal(t, 2+5+3, a.Network().NodeCount())
}

func TestBuilderConversionCopiesWishlists(t *testing.T) {
	p, err := problem.Load(filepath.Join("testdata", "four_presents.yaml"))
	require.NoError(t, err)

	items := p.BuilderItems()
	require.Equal(t, builder.Item{Name: "p1", Quantity: 7}, items[0])

	rs := p.BuilderRecipients()
	rs[0].Wishlist[0] = "zzz"
	require.Equal(t, "p1", p.Recipients[0].Wishlist[0])
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"unknown key":       "items: []\nchildren: []\n",
		"duplicate item":    "items: [{name: p1, quantity: 1}, {name: p1, quantity: 2}]\n",
		"duplicate child":   "recipients: [{name: c1, max_allotment: 1}, {name: c1, max_allotment: 1}]\n",
		"missing name":      "items: [{quantity: 1}]\n",
		"negative quantity": "items: [{name: p1, quantity: -1}]\n",
		"negative cap":      "recipients: [{name: c1, max_allotment: -2}]\n",
		"blank wish":        "recipients: [{name: c1, wishlist: [\"\"], max_allotment: 1}]\n",
		"malformed":         "items: {name: p1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := problem.Decode(strings.NewReader(doc))
			require.Error(t, err)
			require.True(t, errors.Is(err, problem.ErrInvalidProblem), "got %v", err)
		})
	}
}

func TestDecodeAcceptsEmptyWishlist(t *testing.T) {
	p, err := problem.Decode(strings.NewReader("items: [{name: p1, quantity: 1}]\nrecipients: [{name: c1, max_allotment: 2}]\n"))
	require.NoError(t, err)
	require.Empty(t, p.Recipients[0].Wishlist)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := problem.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
