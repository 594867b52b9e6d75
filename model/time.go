// Copyright 2013 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"strconv"
	"time"
)

// Timestamp is a sample timestamp: the number of seconds since the Unix
// epoch, as a floating point value so that sub-second precision carried
// on the wire (e.g. `1520879607.789`) survives intact. Unlike the
// millisecond-tick Time used elsewhere in this lineage, exposition
// timestamps are never rounded.
type Timestamp float64

// Equal reports whether two Timestamps represent the same instant.
func (t Timestamp) Equal(o Timestamp) bool {
	return t == o
}

// Before reports whether t is strictly before o.
func (t Timestamp) Before(o Timestamp) bool {
	return t < o
}

// After reports whether t is strictly after o.
func (t Timestamp) After(o Timestamp) bool {
	return t > o
}

// Time returns the time.Time representation of t.
func (t Timestamp) Time() time.Time {
	sec := int64(t)
	nsec := int64((float64(t) - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

// String renders t the way it appeared on the wire: the shortest decimal
// that round-trips, matching the teacher's use of FormatFloat with -1
// precision.
func (t Timestamp) String() string {
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

// TimestampFromTime returns the Timestamp equivalent to t.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(float64(t.UnixNano()) / float64(time.Second))
}

// ParseTimestamp parses a bare decimal timestamp token as found after a
// sample's value on the wire.
func ParseTimestamp(s string) (Timestamp, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return Timestamp(f), nil
}
