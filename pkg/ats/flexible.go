// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"encoding/json"
)

// flexibleID unmarshals either a JSON string or a JSON number into a
// string. Greenhouse and Recruitee both emit numeric ids on some endpoints
// and string ids on others.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

func (f flexibleID) String() string { return string(f) }

// flexibleText unmarshals a field that vendors sometimes emit as a bare
// string and sometimes as an object carrying the text under a "value" key
// (Greenhouse's description field does this).
type flexibleText struct {
	value string
	set   bool
}

func (f *flexibleText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.value, f.set = s, true
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	f.value, f.set = obj.Value, true
	return nil
}

func (f flexibleText) String() string { return f.value }

// flexibleLocation unmarshals a location field that is either a bare string
// or an object carrying a "name" or "city" key (Greenhouse and Ashby both do
// this for different endpoints of the same vendor). isObject records which
// shape was seen, so a caller can tell "object with neither name nor city"
// apart from "plain empty string" — Greenhouse's object shape falls back to
// "Unknown" only in the former case.
type flexibleLocation struct {
	text     string
	isObject bool
}

func (f *flexibleLocation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.text = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
		City string `json:"city"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil // unrecognized shape degrades to empty location, not a parse error
	}
	f.isObject = true
	if obj.Name != "" {
		f.text = obj.Name
	} else {
		f.text = obj.City
	}
	return nil
}

// flexibleEducation unmarshals Greenhouse's "education" field, which is
// either a bare string or an object carrying the value under "value".
type flexibleEducation struct {
	value string
}

func (f *flexibleEducation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.value = s
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	f.value = obj.Value
	return nil
}

// flexibleMetadataValue unmarshals a Greenhouse metadata item's "value"
// field, which may be a bare string or an object carrying "value".
type flexibleMetadataValue struct {
	raw json.RawMessage
}

func (f *flexibleMetadataValue) UnmarshalJSON(data []byte) error {
	f.raw = append([]byte(nil), data...)
	return nil
}

func (f flexibleMetadataValue) asString() (string, bool) {
	var s string
	if err := json.Unmarshal(f.raw, &s); err == nil {
		return s, true
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(f.raw, &obj); err == nil && obj.Value != "" {
		return obj.Value, true
	}
	return "", false
}
