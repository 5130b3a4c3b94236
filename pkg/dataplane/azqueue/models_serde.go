// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package azqueue

import (
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// timeRFC1123 is a time written in the HTTP date format, as the queue
// service does for message and replication times.
type timeRFC1123 time.Time

func (t timeRFC1123) MarshalText() ([]byte, error) {
	return []byte(time.Time(t).UTC().Format(http.TimeFormat)), nil
}

func (t *timeRFC1123) UnmarshalText(data []byte) error {
	parsed, err := time.Parse(time.RFC1123, strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	*t = timeRFC1123(parsed.UTC())
	return nil
}

func rfc1123Ptr(t *time.Time) *timeRFC1123 {
	if t == nil {
		return nil
	}
	v := timeRFC1123(*t)
	return &v
}

func timePtr(t *timeRFC1123) *time.Time {
	if t == nil {
		return nil
	}
	v := time.Time(*t)
	return &v
}

// additionalProperties decodes an element whose children are free-form
// name/value pairs, such as queue metadata. Names are lower-cased since the
// service treats them case-insensitively.
type additionalProperties map[string]*string

func (ap *additionalProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	tokName := ""
	for {
		t, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch tt := t.(type) {
		case xml.StartElement:
			tokName = strings.ToLower(tt.Name.Local)
		case xml.CharData:
			if tokName == "" {
				continue
			}
			if *ap == nil {
				*ap = additionalProperties{}
			}
			s := string(tt)
			(*ap)[tokName] = &s
			tokName = ""
		case xml.EndElement:
			if tokName != "" {
				if *ap == nil {
					*ap = additionalProperties{}
				}
				empty := ""
				(*ap)[tokName] = &empty
				tokName = ""
			}
		}
	}
}

func (ap additionalProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for name, value := range ap {
		if value == nil {
			continue
		}
		if err := e.EncodeElement(*value, xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML implements the xml.Unmarshaller interface for type DequeuedMessageItem.
func (d *DequeuedMessageItem) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	type alias DequeuedMessageItem
	aux := &struct {
		*alias
		ExpirationTime  *timeRFC1123 `xml:"ExpirationTime"`
		InsertionTime   *timeRFC1123 `xml:"InsertionTime"`
		TimeNextVisible *timeRFC1123 `xml:"TimeNextVisible"`
	}{alias: (*alias)(d)}
	if err := dec.DecodeElement(aux, &start); err != nil {
		return err
	}
	d.ExpirationTime = timePtr(aux.ExpirationTime)
	d.InsertionTime = timePtr(aux.InsertionTime)
	d.TimeNextVisible = timePtr(aux.TimeNextVisible)
	return nil
}

// UnmarshalXML implements the xml.Unmarshaller interface for type EnqueuedMessage.
func (e *EnqueuedMessage) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	type alias EnqueuedMessage
	aux := &struct {
		*alias
		ExpirationTime  *timeRFC1123 `xml:"ExpirationTime"`
		InsertionTime   *timeRFC1123 `xml:"InsertionTime"`
		TimeNextVisible *timeRFC1123 `xml:"TimeNextVisible"`
	}{alias: (*alias)(e)}
	if err := dec.DecodeElement(aux, &start); err != nil {
		return err
	}
	e.ExpirationTime = timePtr(aux.ExpirationTime)
	e.InsertionTime = timePtr(aux.InsertionTime)
	e.TimeNextVisible = timePtr(aux.TimeNextVisible)
	return nil
}

// MarshalXML implements the xml.Marshaller interface for type GeoReplication.
func (g GeoReplication) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	type alias GeoReplication
	aux := &struct {
		*alias
		LastSyncTime *timeRFC1123 `xml:"LastSyncTime"`
	}{
		alias:        (*alias)(&g),
		LastSyncTime: rfc1123Ptr(g.LastSyncTime),
	}
	return enc.EncodeElement(aux, start)
}

// UnmarshalXML implements the xml.Unmarshaller interface for type GeoReplication.
func (g *GeoReplication) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	type alias GeoReplication
	aux := &struct {
		*alias
		LastSyncTime *timeRFC1123 `xml:"LastSyncTime"`
	}{alias: (*alias)(g)}
	if err := dec.DecodeElement(aux, &start); err != nil {
		return err
	}
	g.LastSyncTime = timePtr(aux.LastSyncTime)
	return nil
}

// UnmarshalXML implements the xml.Unmarshaller interface for type PeekedMessageItem.
func (p *PeekedMessageItem) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	type alias PeekedMessageItem
	aux := &struct {
		*alias
		ExpirationTime *timeRFC1123 `xml:"ExpirationTime"`
		InsertionTime  *timeRFC1123 `xml:"InsertionTime"`
	}{alias: (*alias)(p)}
	if err := dec.DecodeElement(aux, &start); err != nil {
		return err
	}
	p.ExpirationTime = timePtr(aux.ExpirationTime)
	p.InsertionTime = timePtr(aux.InsertionTime)
	return nil
}

// MarshalXML implements the xml.Marshaller interface for type QueueItem.
func (q QueueItem) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	type alias QueueItem
	aux := &struct {
		*alias
		Metadata additionalProperties `xml:"Metadata,omitempty"`
	}{
		alias:    (*alias)(&q),
		Metadata: additionalProperties(q.Metadata),
	}
	return enc.EncodeElement(aux, start)
}

// UnmarshalXML implements the xml.Unmarshaller interface for type QueueItem.
func (q *QueueItem) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	type alias QueueItem
	aux := &struct {
		*alias
		Metadata *additionalProperties `xml:"Metadata"`
	}{alias: (*alias)(q)}
	if err := dec.DecodeElement(aux, &start); err != nil {
		return err
	}
	if aux.Metadata != nil {
		q.Metadata = *aux.Metadata
	}
	return nil
}

// signedIdentifiers wraps the access policy list on the wire.
type signedIdentifiers struct {
	XMLName xml.Name            `xml:"SignedIdentifiers"`
	Items   []*SignedIdentifier `xml:"SignedIdentifier"`
}

// queueMessagesList wraps message lists on the wire.
type queueMessagesList[T any] struct {
	XMLName xml.Name `xml:"QueueMessagesList"`
	Items   []*T     `xml:"QueueMessage"`
}
