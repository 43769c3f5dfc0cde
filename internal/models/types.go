package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LatLng is a single geographic coordinate. On the wire it is a
// two-element [lat, lng] array, matching the geometry format the
// map clients produce.
type LatLng struct {
	Lat float64
	Lng float64
}

func (p LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lng})
}

func (p *LatLng) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Lat, p.Lng = pair[0], pair[1]
	return nil
}

// LineString is an ordered route geometry stored as a JSON text column.
// Reads always yield a slice, never null.
type LineString []LatLng

func (ls LineString) MarshalJSON() ([]byte, error) {
	if ls == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]LatLng(ls))
}

func (ls LineString) Value() (driver.Value, error) {
	if len(ls) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(ls)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (ls *LineString) Scan(src interface{}) error {
	data, err := columnText(src)
	if err != nil {
		return fmt.Errorf("scan geometry: %w", err)
	}
	if len(data) == 0 {
		*ls = LineString{}
		return nil
	}
	return json.Unmarshal(data, (*[]LatLng)(ls))
}

// TagMap holds arbitrary key/value labels for a favorite place,
// stored as a JSON text column. Reads always yield a map, never null.
type TagMap map[string]string

func (t TagMap) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(t))
}

func (t TagMap) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TagMap) Scan(src interface{}) error {
	data, err := columnText(src)
	if err != nil {
		return fmt.Errorf("scan tags: %w", err)
	}
	if len(data) == 0 {
		*t = TagMap{}
		return nil
	}
	return json.Unmarshal(data, (*map[string]string)(t))
}

func columnText(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}
