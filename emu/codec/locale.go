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

package codec

import (
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	localeLk   sync.Mutex
	localeTbls = map[string]encoding.Encoding{
		"ISO8859-1":  charmap.ISO8859_1,
		"ISO8859-15": charmap.ISO8859_15,
		"KOI8-R":     charmap.KOI8R,
		"CP437":      charmap.CodePage437,
	}
)

// RegisterLocaleEncoding registers an additional named codeset for use
// by LookupLocale, letting a caller add codesets beyond the built-in
// ones above (mirrors the teacher's RegisterEncoding facility).
func RegisterLocaleEncoding(name string, enc encoding.Encoding) {
	localeLk.Lock()
	defer localeLk.Unlock()
	localeTbls[strings.ToUpper(name)] = enc
}

// LookupLocale resolves an explicit codeset name (e.g. "ISO8859-15",
// "UTF-8") to a registered encoding.Encoding. It reports ok=false for
// "UTF-8"/"" (the emulator's own UTF-8 decoder handles those, no
// charmap.Encoding needed) or for an unrecognized name.
func LookupLocale(codeset string) (encoding.Encoding, bool) {
	name := strings.ToUpper(strings.TrimSpace(codeset))
	if name == "" || name == "UTF-8" || name == "UTF8" {
		return nil, false
	}
	localeLk.Lock()
	defer localeLk.Unlock()
	enc, ok := localeTbls[name]
	return enc, ok
}

// CodesetFromLocaleString extracts the $codeset portion of a POSIX
// locale string of the form "$language[.$codeset[@$variant]]", the same
// format LC_ALL/LC_CTYPE/LANG use. "POSIX" and "C" resolve to "" (the
// portable character set, treated as pure ASCII).
func CodesetFromLocaleString(locale string) string {
	switch locale {
	case "", "POSIX", "C":
		return ""
	}
	codeset := locale
	if i := strings.IndexByte(codeset, '.'); i >= 0 {
		codeset = codeset[i+1:]
	}
	if i := strings.IndexByte(codeset, '@'); i >= 0 {
		codeset = codeset[:i]
	}
	return codeset
}

// DecodeLocaleBytes transcodes b from enc's 8-bit codeset to UTF-8, for
// a script co-process whose stderr/stdout was captured in the locale
// LookupLocale resolved rather than UTF-8 or the ATASCII codepage.
func DecodeLocaleBytes(enc encoding.Encoding, b []byte) ([]byte, error) {
	return enc.NewDecoder().Bytes(b)
}

// ResolveLocale picks the first non-empty value among lcAll, lcCtype,
// and lang (in that precedence order, matching POSIX locale resolution
// and the teacher's own LC_ALL/LC_CTYPE/LANG precedence) and extracts
// its codeset.
func ResolveLocale(lcAll, lcCtype, lang string) string {
	for _, v := range []string{lcAll, lcCtype, lang} {
		if v != "" {
			return CodesetFromLocaleString(v)
		}
	}
	return ""
}
