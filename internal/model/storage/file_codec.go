package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
)

// Flat file layout shared with the first version of the bot:
//
//	User ID,Name,Pay Frequency,Payday,Bills
//	42,Ann,monthly,friday,"monthly, Rent, $1200.0, due on 1; weekly, Coffee, $5.0, due on 20"
const (
	billSeparator  = "; "
	fieldSeparator = ", "
	dueDayPrefix   = "due on "
	minBillFields  = 4
)

var fileHeader = []string{"User ID", "Name", "Pay Frequency", "Payday", "Bills"}

func writeProfiles(w io.Writer, profiles []user.Profile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fileHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, p := range profiles {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			string(p.PayFrequency),
			string(p.Payday),
			encodeBills(p.Bills),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write user %d", p.ID)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush")
}

func readProfiles(r io.Reader) ([]user.Profile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(fileHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read records")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	profiles := make([]user.Profile, 0, len(rows)-1)
	for i, row := range rows[1:] {
		p, err := decodeProfile(row)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+2)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func decodeProfile(row []string) (user.Profile, error) {
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return user.Profile{}, errors.Wrap(err, "user id")
	}
	p := user.NewProfile(id)
	p.Name = row[1]
	p.PayFrequency = user.PayFrequency(row[2])
	p.Payday = user.Weekday(row[3])

	if row[4] == "" {
		return p, nil
	}
	for _, raw := range strings.Split(row[4], billSeparator) {
		b, err := decodeBill(raw)
		if err != nil {
			return user.Profile{}, err
		}
		p.AddBill(b)
	}
	return p, nil
}

func encodeBills(bills []bill.Bill) string {
	res := make([]string, 0, len(bills))
	for _, b := range bills {
		res = append(res, fmt.Sprintf("%s, %s, $%s, %s%d",
			b.Frequency, b.Merchant, bill.FormatAmount(b.Amount), dueDayPrefix, b.DueDay))
	}
	return strings.Join(res, billSeparator)
}

// decodeBill reads "frequency, merchant, $amount, due on N". Merchants may
// contain the field separator, so frequency is taken from the front and the
// amount and due day from the back.
func decodeBill(raw string) (bill.Bill, error) {
	fields := strings.Split(raw, fieldSeparator)
	if len(fields) < minBillFields {
		return bill.Bill{}, errors.Errorf("malformed bill %q", raw)
	}
	n := len(fields)

	amount, err := bill.ParseAmount(fields[n-2])
	if err != nil {
		return bill.Bill{}, errors.Wrapf(err, "bill %q", raw)
	}
	dueDay, err := strconv.Atoi(strings.TrimPrefix(fields[n-1], dueDayPrefix))
	if err != nil {
		return bill.Bill{}, errors.Wrapf(err, "bill %q", raw)
	}

	// stored as typed, so normalize known aliases and keep the rest verbatim
	freq := bill.Frequency(fields[0])
	if parsed, err := bill.ParseFrequency(fields[0]); err == nil {
		freq = parsed
	}

	return bill.Bill{
		Frequency: freq,
		Merchant:  strings.Join(fields[1:n-2], fieldSeparator),
		Amount:    amount,
		DueDay:    dueDay,
	}, nil
}
