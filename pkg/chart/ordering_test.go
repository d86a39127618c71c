package chart

import (
	"reflect"
	"testing"

	"github.com/JoshuaBeard/plottools/pkg/errors"
)

func TestReorderIdentity(t *testing.T) {
	values := []float64{3, 1, 2}
	labels := []string{"a", "b", "c"}

	gotV, gotL, err := Reorder(values, labels, SortSpec{})
	if err != nil {
		t.Fatalf("Reorder() error: %v", err)
	}
	if !reflect.DeepEqual(gotV, values) || !reflect.DeepEqual(gotL, labels) {
		t.Errorf("Reorder(zero spec) = %v, %v, want inputs unchanged", gotV, gotL)
	}
}

func TestReorderPolicies(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		labels     []string
		spec       SortSpec
		wantValues []float64
		wantLabels []string
	}{
		{
			name:       "ascending",
			values:     []float64{3, 1, 2},
			labels:     []string{"a", "b", "c"},
			spec:       SortSpec{Policy: SortAscending},
			wantValues: []float64{1, 2, 3},
			wantLabels: []string{"b", "c", "a"},
		},
		{
			name:       "descending",
			values:     []float64{3, 1, 2},
			labels:     []string{"a", "b", "c"},
			spec:       SortSpec{Policy: SortDescending},
			wantValues: []float64{3, 2, 1},
			wantLabels: []string{"a", "c", "b"},
		},
		{
			name:       "explicit permutation",
			values:     []float64{3, 1, 2},
			labels:     []string{"a", "b", "c"},
			spec:       SortSpec{Perm: []int{2, 0, 1}},
			wantValues: []float64{2, 3, 1},
			wantLabels: []string{"c", "a", "b"},
		},
		{
			name:       "ascending without labels",
			values:     []float64{2, 1},
			spec:       SortSpec{Policy: SortAscending},
			wantValues: []float64{1, 2},
			wantLabels: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotV, gotL, err := Reorder(tt.values, tt.labels, tt.spec)
			if err != nil {
				t.Fatalf("Reorder() error: %v", err)
			}
			if !reflect.DeepEqual(gotV, tt.wantValues) {
				t.Errorf("values = %v, want %v", gotV, tt.wantValues)
			}
			if len(gotL) != 0 || len(tt.wantLabels) != 0 {
				if !reflect.DeepEqual(gotL, tt.wantLabels) {
					t.Errorf("labels = %v, want %v", gotL, tt.wantLabels)
				}
			}
		})
	}
}

func TestReorderPreservesPairs(t *testing.T) {
	values := []float64{5, 3, 8, 1}
	labels := []string{"five", "three", "eight", "one"}

	perms := []SortSpec{
		{Policy: SortAscending},
		{Policy: SortDescending},
		{Perm: []int{3, 2, 1, 0}},
		{Perm: []int{1, 3, 0, 2}},
	}

	pairs := func(vs []float64, ls []string) map[string]float64 {
		m := make(map[string]float64, len(vs))
		for i := range vs {
			m[ls[i]] = vs[i]
		}
		return m
	}
	want := pairs(values, labels)

	for _, spec := range perms {
		gotV, gotL, err := Reorder(values, labels, spec)
		if err != nil {
			t.Fatalf("Reorder(%+v) error: %v", spec, err)
		}
		if got := pairs(gotV, gotL); !reflect.DeepEqual(got, want) {
			t.Errorf("Reorder(%+v) broke value-label pairing: %v", spec, got)
		}
	}
}

func TestReorderDescendingReversesAscending(t *testing.T) {
	values := []float64{4, 9, 2, 7, 5}

	asc, _, err := Reorder(values, nil, SortSpec{Policy: SortAscending})
	if err != nil {
		t.Fatal(err)
	}
	desc, _, err := Reorder(values, nil, SortSpec{Policy: SortDescending})
	if err != nil {
		t.Fatal(err)
	}

	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("descending is not the reverse of ascending: %v vs %v", asc, desc)
		}
	}
}

func TestReorderStableTies(t *testing.T) {
	values := []float64{2, 1, 2, 1}
	labels := []string{"first2", "first1", "second2", "second1"}

	_, gotL, err := Reorder(values, labels, SortSpec{Policy: SortAscending})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first1", "second1", "first2", "second2"}
	if !reflect.DeepEqual(gotL, want) {
		t.Errorf("ties not stable: labels = %v, want %v", gotL, want)
	}
}

func TestReorderDoesNotMutateInputs(t *testing.T) {
	values := []float64{3, 1, 2}
	labels := []string{"a", "b", "c"}

	if _, _, err := Reorder(values, labels, SortSpec{Policy: SortAscending}); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(values, []float64{3, 1, 2}) {
		t.Errorf("input values mutated: %v", values)
	}
	if !reflect.DeepEqual(labels, []string{"a", "b", "c"}) {
		t.Errorf("input labels mutated: %v", labels)
	}
}

func TestReorderErrors(t *testing.T) {
	tests := []struct {
		name     string
		spec     SortSpec
		wantCode errors.Code
	}{
		{
			name:     "permutation length mismatch",
			spec:     SortSpec{Perm: []int{0, 1}},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "unknown policy",
			spec:     SortSpec{Policy: "sideways"},
			wantCode: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Reorder([]float64{3, 1, 2}, nil, tt.spec)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Reorder() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestParseSortSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    SortSpec
		wantErr bool
	}{
		{in: "", want: SortSpec{}},
		{in: "ascending", want: SortSpec{Policy: SortAscending}},
		{in: "Descending", want: SortSpec{Policy: SortDescending}},
		{in: "2,0,1", want: SortSpec{Perm: []int{2, 0, 1}}},
		{in: "2, 0, 1", want: SortSpec{Perm: []int{2, 0, 1}}},
		{in: "upward", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSortSpec(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseSortSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
