package model

import "strings"

// MessageSeparator joins the error messages of several suppliers
const MessageSeparator = "\r\n"

// JoinMessages joins the non-empty messages in order
func JoinMessages(messages ...string) string {
	kept := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			kept = append(kept, m)
		}
	}
	return strings.Join(kept, MessageSeparator)
}
