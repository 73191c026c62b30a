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

package main

import (
	"io"
	"os"
	"time"

	"github.com/cybrota/avltree/kinds"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogger points the global zerolog logger at a console writer on w.
// Diagnostics go there; tree output itself is written to stdout.
func setupLogger(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

func init() {
	setupLogger(os.Stderr, false)
}

// logRotation is the rotation observer shared by the commands.
func logRotation(ev kinds.RotationEvent) {
	log.Debug().
		Str("case", ev.Case.String()).
		Str("pivot", ev.Pivot).
		Msg("rebalanced")
}

func logEvent(ev kinds.Event) {
	if ev.SeenBefore {
		log.Debug().Str("value", ev.Value).Msg("value probably inserted before; routed right")
	}
}
