package estimate

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// packEps absorbs float noise when dividing fractional pack sizes.
const packEps = 1e-9

type PackOption struct {
	Label string  `json:"label,omitempty"`
	Size  float64 `json:"size"`
	Price float64 `json:"price"`
}

// PackLine is one pack size of a combination. Price is per pack.
type PackLine struct {
	Label    string  `json:"label,omitempty"`
	Size     float64 `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type PackCombination struct {
	Packs      []PackLine `json:"packs"`
	TotalCost  float64    `json:"total_cost"`
	TotalUnits float64    `json:"total_units"`
}

// MaterialQuantity is the number of whole units (litres or kg) needed to
// cover area with the given coats. coverageRate is the single-coat rate from
// the catalog; callers pass the real coat count and never a coverage already
// multiplied out for coats. A layer with zero coats is absent and needs nothing.
func MaterialQuantity(area, coverageRate float64, coats int) float64 {
	area = finite(area)
	coverageRate = finite(coverageRate)
	if area <= 0 || coverageRate <= 0 || coats <= 0 {
		return 0
	}
	return math.Max(math.Ceil(area*float64(coats)/coverageRate-packEps), 1)
}

// OptimalPackCombination covers required with the largest packs first and
// tops up any remainder with one more of the smallest pack. Each pack size
// appears at most once in the result.
//
// When options exist but cannot cover the quantity, the partial combination is
// returned together with ErrPackCombinationNotFound.
func OptimalPackCombination(required float64, options []PackOption) (PackCombination, error) {
	required = finite(required)
	if required <= 0 || len(options) == 0 {
		return PackCombination{Packs: []PackLine{}}, nil
	}

	valid := make([]PackOption, 0, len(options))
	for _, o := range options {
		if finite(o.Size) <= 0 {
			continue
		}
		o.Price = finite(o.Price)
		valid = append(valid, o)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Size > valid[j].Size
	})

	result := PackCombination{Packs: []PackLine{}}
	remaining := required

	for _, o := range valid {
		count := int(math.Floor(remaining/o.Size + packEps))
		if count <= 0 {
			continue
		}
		result.Packs = append(result.Packs, PackLine{Label: o.Label, Size: o.Size, Quantity: count, Price: o.Price})
		result.TotalCost += float64(count) * o.Price
		result.TotalUnits += float64(count) * o.Size
		remaining -= float64(count) * o.Size
		if remaining < packEps {
			remaining = 0
			break
		}
	}

	if remaining > 0 && len(valid) > 0 {
		smallest := smallestPack(valid)
		merged := false
		for i := range result.Packs {
			if result.Packs[i].Size == smallest.Size {
				result.Packs[i].Quantity++
				merged = true
				break
			}
		}
		if !merged {
			result.Packs = append(result.Packs, PackLine{Label: smallest.Label, Size: smallest.Size, Quantity: 1, Price: smallest.Price})
		}
		result.TotalCost += smallest.Price
		result.TotalUnits += smallest.Size
	}

	if len(result.Packs) == 0 || result.TotalUnits+packEps < required {
		return result, ErrPackCombinationNotFound
	}

	return result, nil
}

// smallestPack returns the first option, in sorted order, of the smallest size.
func smallestPack(sorted []PackOption) PackOption {
	minSize := sorted[len(sorted)-1].Size
	for _, o := range sorted {
		if o.Size == minSize {
			return o
		}
	}
	return sorted[len(sorted)-1]
}

type packResult struct {
	comb PackCombination
	err  error
}

// PackCombination is the memoised form of OptimalPackCombination.
func (e *Engine) PackCombination(required float64, options []PackOption) (PackCombination, error) {
	key := packKey(required, options)
	if v, ok := e.lookup(key); ok {
		if r, ok := v.(packResult); ok {
			return r.comb.clone(), r.err
		}
	}

	comb, err := OptimalPackCombination(required, options)
	e.store(key, packResult{comb: comb.clone(), err: err})
	return comb, err
}

func (c PackCombination) clone() PackCombination {
	packs := make([]PackLine, len(c.Packs))
	copy(packs, c.Packs)
	c.Packs = packs
	return c
}

func packKey(required float64, options []PackOption) string {
	var b strings.Builder
	b.WriteString("packs:")
	b.WriteString(strconv.FormatFloat(required, 'g', -1, 64))
	for _, o := range options {
		b.WriteByte('|')
		b.WriteString(o.Label)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(o.Size, 'g', -1, 64))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(o.Price, 'g', -1, 64))
	}
	return b.String()
}

var packSizeRe = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// ParsePackSize reads the numeric size from a SKU label such as "20 kg" or
// "0.9 ltr". Labels without a number give 0.
func ParsePackSize(label string) float64 {
	m := packSizeRe.FindString(label)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
