// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package protocol

import (
	"fmt"
	"io"

	"github.com/tdial/termcore/options"
)

// AsciiConfig holds the six policy toggles read once at transfer
// start, per spec 4.3 and 6 ("not re-read mid-operation").
type AsciiConfig struct {
	UploadUseTranslateTable   bool
	UploadCRPolicy            options.CRLFPolicy
	UploadLFPolicy            options.CRLFPolicy
	DownloadUseTranslateTable bool
	DownloadCRPolicy          options.CRLFPolicy
	DownloadLFPolicy          options.CRLFPolicy
}

// NewAsciiConfig resolves the six policy toggles from an options
// store at transfer start.
func NewAsciiConfig(store *options.Store) AsciiConfig {
	return AsciiConfig{
		UploadUseTranslateTable:   store.Bool("upload_use_translate_table"),
		UploadCRPolicy:            store.CRLF("upload_cr_policy"),
		UploadLFPolicy:            store.CRLF("upload_lf_policy"),
		DownloadUseTranslateTable: store.Bool("download_use_translate_table"),
		DownloadCRPolicy:          store.CRLF("download_cr_policy"),
		DownloadLFPolicy:          store.CRLF("download_lf_policy"),
	}
}

// AsciiEngine drives an inline ASCII (non-protocol) file transfer:
// CRLF policy translation plus an optional 256-entry byte translate
// table, in each direction.
type AsciiEngine struct {
	cfg AsciiConfig

	UploadTable   *[256]byte // optional; nil means identity
	DownloadTable *[256]byte

	file io.ReadWriter // the local file being transferred
}

// NewAsciiEngine creates an engine bound to the given file handle and
// already-resolved configuration.
func NewAsciiEngine(cfg AsciiConfig, file io.ReadWriter) *AsciiEngine {
	return &AsciiEngine{cfg: cfg, file: file}
}

// applyCRLF expands or strips CR/LF per policy, appending the result
// to dst and returning it.
func applyCRLF(dst []byte, b byte, crPolicy, lfPolicy options.CRLFPolicy) []byte {
	switch b {
	case '\r':
		switch crPolicy {
		case options.CRLFStrip:
			return dst
		case options.CRLFAdd:
			return append(dst, '\r', '\n')
		default:
			return append(dst, b)
		}
	case '\n':
		switch lfPolicy {
		case options.CRLFStrip:
			return dst
		case options.CRLFAdd:
			return append(dst, '\r', '\n')
		default:
			return append(dst, b)
		}
	default:
		return append(dst, b)
	}
}

func translate(b byte, table *[256]byte) byte {
	if table == nil {
		return b
	}
	return table[b]
}

// Upload reads from the file, applies the translate table (when
// enabled) then CRLF handling, and writes into output. It returns the number of
// output bytes produced; it advances stats.BytesTransfer by that
// count and, on EOF, advances the phase to End and stamps EndTime.
//
// Per 4.3, at most (len(output)/2)-1 bytes are read from the file per
// call, leaving headroom for CR/LF expansion.
func (e *AsciiEngine) Upload(stats *Stats, output []byte) (written int, err error) {
	limit := len(output)/2 - 1
	if limit <= 0 {
		return 0, nil
	}
	buf := make([]byte, limit)
	n, rerr := e.file.Read(buf)

	out := output[:0]
	for i := 0; i < n; i++ {
		b := translate(buf[i], e.UploadTable)
		if e.cfg.UploadUseTranslateTable {
			out = applyCRLF(out, b, e.cfg.UploadCRPolicy, e.cfg.UploadLFPolicy)
		} else {
			out = applyCRLF(out, buf[i], e.cfg.UploadCRPolicy, e.cfg.UploadLFPolicy)
		}
	}

	stats.AddBytesTransfer(int64(len(out)))

	if rerr == io.EOF {
		stats.Phase = PhaseEnd
		stats.EndTime = stats.clockNow()
		return len(out), nil
	}
	if rerr != nil {
		stats.Phase = PhaseAbort
		stats.SetLastMessage(fmt.Sprintf("upload read error: %v", rerr))
		return len(out), rerr
	}
	return len(out), nil
}

// Download applies the translate table then CRLF handling to input,
// writes the result to the file, and reports the raw input back to
// the caller so it can also be forwarded to console processing. A
// short write is treated as fatal (filesystem full).
func (e *AsciiEngine) Download(stats *Stats, input []byte) (consoleEcho []byte, err error) {
	out := make([]byte, 0, len(input)+len(input)/4)
	for _, raw := range input {
		b := raw
		if e.cfg.DownloadUseTranslateTable {
			b = translate(b, e.DownloadTable)
		}
		out = applyCRLF(out, b, e.cfg.DownloadCRPolicy, e.cfg.DownloadLFPolicy)
	}

	n, werr := e.file.Write(out)
	if werr != nil {
		stats.Phase = PhaseAbort
		stats.SetLastMessage(fmt.Sprintf("download write error: %v", werr))
		return input, werr
	}
	if n != len(out) {
		stats.Phase = PhaseAbort
		stats.SetLastMessage("download write error: short write (disk full)")
		return input, fmt.Errorf("protocol: short write: wrote %d of %d bytes", n, len(out))
	}

	stats.AddBytesTransfer(int64(len(input)))
	return input, nil
}
