package docqa

import "encoding/base64"

// EncodeDocument converts raw document bytes to the base64 form expected by
// the QA service transport.
func EncodeDocument(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
