package messages

import (
	"fmt"
	"strings"
	"time"

	"max.ks1230/bills-bot/internal/entity/bill"
)

const (
	commandParts     = 2
	cacheDateLayout  = "2006-01-02"
	billsCachePrefix = "bills:"
)

// parseCommand splits "/cmd arg" and drops a "@botname" suffix. Text that
// does not start with a slash is returned whole as the argument.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	cmd = split[0]
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	if len(split) == commandParts {
		arg = strings.TrimSpace(split[1])
	}
	return strings.ToLower(cmd), arg
}

func billsCacheOption(day time.Time) string {
	return billsCachePrefix + day.Format(cacheDateLayout)
}

func formatBillList(bills []bill.Bill) string {
	res := make([]string, 0, len(bills)+1)
	res = append(res, billListMessage)
	for i, b := range bills {
		res = append(res, fmt.Sprintf("%d. %s", i+1, b))
	}
	return strings.Join(res, "\n")
}
