package response

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return formatTime(src.(time.Time)), nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: new(string),
			Fn: func(src any) (any, error) {
				t, _ := src.(*time.Time)
				if t == nil || t.IsZero() {
					return (*string)(nil), nil
				}
				s := formatTime(*t)
				return &s, nil
			},
		},
	},
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// mustCopy maps a read view onto its response shape. Mismatched field types are a
// programming error and panic into the recovery middleware.
func mustCopy[T any](src any) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(fmt.Sprintf("response mapping %T: %v", dst, err))
	}
	return dst
}

func mustCopySlice[S any, T any](src []*S) []*T {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		out = append(out, mustCopy[T](s))
	}
	return out
}
