// Copyright 2025 Naren Yellavula
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

package kinds

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNaN = errors.New("NaN is not ordered")

// IntKind stores base-10 64-bit integers
type IntKind struct{}

func (IntKind) Name() string  { return "int" }
func (IntKind) Priority() int { return 1 }

func (IntKind) Accepts(token string) bool {
	_, err := parseInt(token)
	return err == nil
}

func (IntKind) NewSession(cfg SessionConfig) Session {
	return newTypedSession("int", parseInt, cfg)
}

func parseInt(token string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(token), 10, 64)
}

// FloatKind stores 64-bit floats. NaN is refused since it compares false
// against everything, including itself.
type FloatKind struct{}

func (FloatKind) Name() string  { return "float" }
func (FloatKind) Priority() int { return 2 }

func (FloatKind) Accepts(token string) bool {
	_, err := parseFloat(token)
	return err == nil
}

func (FloatKind) NewSession(cfg SessionConfig) Session {
	return newTypedSession("float", parseFloat, cfg)
}

func parseFloat(token string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, errNaN
	}
	return f, nil
}

// StringKind stores tokens as they are, ordered byte-wise
type StringKind struct{}

func (StringKind) Name() string          { return "string" }
func (StringKind) Priority() int         { return 9 }
func (StringKind) Accepts(_ string) bool { return true }

func (StringKind) NewSession(cfg SessionConfig) Session {
	return newTypedSession("string", parseString, cfg)
}

func parseString(token string) (string, error) {
	return token, nil
}
