package theme

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Snapshot serializes style and color as a JSON array of
// {"pos","style","color"} records, one per boundary either map steps
// at (SPEC_FULL.md's supplemented Snapshot/Restore, for debug dumps
// and tests).
func Snapshot(style, color *Map) ([]byte, error) {
	data := []byte("[]")
	w := Walk(style, color)
	i := 0
	var err error
	for {
		prefix := strconv.Itoa(i)
		data, err = sjson.SetBytes(data, prefix+".pos", w.Pos())
		if err != nil {
			return nil, err
		}
		data, err = sjson.SetBytes(data, prefix+".style", w.Style())
		if err != nil {
			return nil, err
		}
		data, err = sjson.SetBytes(data, prefix+".color", w.Color())
		if err != nil {
			return nil, err
		}
		i++
		if !w.Next() {
			break
		}
	}
	return data, nil
}

// Restore rebuilds a style Map and a color Map from Snapshot's JSON.
func Restore(data []byte) (style, color *Map, err error) {
	style, color = New(), New()
	var prevStyle, prevColor string
	gjson.ParseBytes(data).ForEach(func(_, rec gjson.Result) bool {
		pos := rec.Get("pos").Int()
		s := rec.Get("style").String()
		c := rec.Get("color").String()
		if s != prevStyle {
			style.rawInsert(pos, s)
			prevStyle = s
		}
		if c != prevColor {
			color.rawInsert(pos, c)
			prevColor = c
		}
		return true
	})
	return style, color, nil
}
