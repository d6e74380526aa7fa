package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]string
		wantNum  int
		wantSize int
	}{
		{
			name:     "defaults when absent",
			params:   map[string]string{},
			wantNum:  1,
			wantSize: 10,
		},
		{
			name:     "explicit values",
			params:   map[string]string{ParamPageNum: "3", ParamPageSize: "25"},
			wantNum:  3,
			wantSize: 25,
		},
		{
			name:     "non-numeric degrades to defaults",
			params:   map[string]string{ParamPageNum: "abc", ParamPageSize: "x"},
			wantNum:  1,
			wantSize: 10,
		},
		{
			name:     "zero and negative degrade to defaults",
			params:   map[string]string{ParamPageNum: "0", ParamPageSize: "-5"},
			wantNum:  1,
			wantSize: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ParsePage(tt.params)

			assert.Equal(t, tt.wantNum, page.Num)
			assert.Equal(t, tt.wantSize, page.Size)
		})
	}
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Num: 1, Size: 10}.Offset())
	assert.Equal(t, 20, Page{Num: 3, Size: 10}.Offset())
	assert.Equal(t, 25, Page{Num: 2, Size: 25}.Offset())
	assert.Equal(t, 25, Page{Num: 2, Size: 25}.Limit())
}
