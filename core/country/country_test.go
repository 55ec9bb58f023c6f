package country_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicheck/core/country"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    country.Code
		wantErr bool
	}{
		{input: "nl", want: country.NL},
		{input: "NL", want: country.NL},
		{input: " be ", want: country.BE},
		{input: "Lu", want: country.LU},
		{input: "fr", want: country.FR},
		{input: "de", wantErr: true},
		{input: "", wantErr: true},
		{input: "nld", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := country.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, country.ErrUnsupportedCountry)
				assert.Contains(t, err.Error(), "("+tt.input+")")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapabilitySets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code       country.Code
		lookup     bool
		search     bool
		validation bool
	}{
		{code: country.NL, lookup: true, search: true, validation: true},
		{code: country.LU, lookup: true, search: true, validation: true},
		{code: country.BE, lookup: false, search: true, validation: true},
		{code: country.FR, lookup: false, search: true, validation: false},
		{code: country.Code("DE"), lookup: false, search: false, validation: false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.lookup, country.SupportsLookup(tt.code))
			assert.Equal(t, tt.search, country.SupportsSearch(tt.code))
			assert.Equal(t, tt.validation, country.HasRules(tt.code))
		})
	}
}

func TestCode_PathSegment(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "nl", country.NL.PathSegment())
	assert.Equal(t, "LU", country.LU.String())
}
