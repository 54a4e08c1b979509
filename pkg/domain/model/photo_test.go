package model_test

import (
	"testing"

	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestPhotoListResponse_PhotoPaths(t *testing.T) {
	tests := []struct {
		name string
		dirs []model.PhotoDir
		want []string
	}{
		{
			name: "single directory",
			dirs: []model.PhotoDir{
				{Name: "100", Files: []string{"A.JPG", "B.JPG"}},
			},
			want: []string{"100/A.JPG", "100/B.JPG"},
		},
		{
			name: "directory then file order is kept",
			dirs: []model.PhotoDir{
				{Name: "101RICOH", Files: []string{"R0000010.JPG"}},
				{Name: "100RICOH", Files: []string{"R0000002.JPG", "R0000001.DNG"}},
			},
			want: []string{"101RICOH/R0000010.JPG", "100RICOH/R0000002.JPG", "100RICOH/R0000001.DNG"},
		},
		{
			name: "empty directory contributes nothing",
			dirs: []model.PhotoDir{
				{Name: "100", Files: []string{}},
				{Name: "101", Files: []string{"C.JPG"}},
				{Name: "102"},
			},
			want: []string{"101/C.JPG"},
		},
		{
			name: "no directories",
			dirs: []model.PhotoDir{},
			want: []string{},
		},
		{
			name: "nil directories",
			dirs: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &model.PhotoListResponse{Dirs: tt.dirs}
			gt.Value(t, resp.PhotoPaths()).Equal(tt.want)
		})
	}
}

func TestPhotoList_Last(t *testing.T) {
	t.Run("last is the final element", func(t *testing.T) {
		list := &model.PhotoList{Paths: []string{"100/A.JPG", "100/B.JPG"}}
		last, ok := list.Last()
		gt.Bool(t, ok).True()
		gt.Value(t, last).Equal("100/B.JPG")
		gt.Number(t, list.Len()).Equal(2)
	})

	t.Run("empty list has no last", func(t *testing.T) {
		list := &model.PhotoList{}
		last, ok := list.Last()
		gt.Bool(t, ok).False()
		gt.Value(t, last).Equal("")
	})
}

func TestEndpoint(t *testing.T) {
	ep := model.NewEndpoint("http://192.168.0.1", "/v1/photos/")

	gt.Value(t, ep.BaseURL()).Equal("http://192.168.0.1/")
	gt.Value(t, ep.ListingURL()).Equal("http://192.168.0.1/v1/photos")
	gt.Value(t, ep.PhotoURL("100/B.JPG")).Equal("http://192.168.0.1/v1/photos/100/B.JPG")
	gt.Value(t, ep.ListingPath()).Equal("v1/photos")
}
