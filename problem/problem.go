// Package problem decodes allocation problems from YAML and validates them
// before they reach package builder.
//
// Document layout:
//
//	items:
//	  - name: p1
//	    quantity: 7
//	recipients:
//	  - name: c1
//	    wishlist: [p1, p2]
//	    max_allotment: 3
//
// Unknown keys are rejected. Names must be non-empty and unique within their
// category, quantities and allotments non-negative. Wishlist entries are not
// resolved here; that is the builder's job.
package problem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/giftflow/builder"
)

// ErrInvalidProblem wraps every decoding and validation failure.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Problem is one allocation instance.
type Problem struct {
	Items      []Item      `yaml:"items" json:"items" validate:"unique=Name,dive"`
	Recipients []Recipient `yaml:"recipients" json:"recipients" validate:"unique=Name,dive"`
}

// Item is the YAML form of builder.Item.
type Item struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Quantity int64  `yaml:"quantity" json:"quantity" validate:"gte=0"`
}

// Recipient is the YAML form of builder.Recipient.
type Recipient struct {
	Name         string   `yaml:"name" json:"name" validate:"required"`
	Wishlist     []string `yaml:"wishlist" json:"wishlist" validate:"dive,required"`
	MaxAllotment int64    `yaml:"max_allotment" json:"max_allotment" validate:"gte=0"`
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Decode reads one YAML document from r and validates it.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	return &p, nil
}

// Load opens path and decodes it.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// BuilderItems converts the items to builder input, preserving order.
func (p *Problem) BuilderItems() []builder.Item {
	out := make([]builder.Item, len(p.Items))
	for i, it := range p.Items {
		out[i] = builder.Item{Name: it.Name, Quantity: it.Quantity}
	}

	return out
}

// BuilderRecipients converts the recipients to builder input, preserving order.
func (p *Problem) BuilderRecipients() []builder.Recipient {
	out := make([]builder.Recipient, len(p.Recipients))
	for i, r := range p.Recipients {
		out[i] = builder.Recipient{
			Name:         r.Name,
			Wishlist:     append([]string(nil), r.Wishlist...),
			MaxAllotment: r.MaxAllotment,
		}
	}

	return out
}

// Build is a shorthand for builder.Build over the problem's items and recipients.
func (p *Problem) Build(opts ...builder.BuilderOption) (*builder.Allocation, error) {
	return builder.Build(p.BuilderItems(), p.BuilderRecipients(), opts...)
}
