package booking

import (
	"strings"
	"unicode/utf8"
)

const (
	LocatorAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	LocatorLength   = 6

	MaxNameLength     = 100
	MaxShortField     = 32
	MaxContactLength  = 255
	MaxSegmentsPerPNR = 8
)

type Locator string

func ParseLocator(s string) (Locator, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != LocatorLength {
		return "", ErrInvalidLocator
	}
	for _, r := range s {
		if !strings.ContainsRune(LocatorAlphabet, r) {
			return "", ErrInvalidLocator
		}
	}
	return Locator(s), nil
}

func (l Locator) String() string { return string(l) }

type TripType string

const (
	TripOutbound TripType = "outbound"
	TripInbound  TripType = "inbound"
)

func ParseTripType(s string) (TripType, error) {
	switch TripType(strings.ToLower(strings.TrimSpace(s))) {
	case TripOutbound:
		return TripOutbound, nil
	case TripInbound:
		return TripInbound, nil
	default:
		return "", ErrInvalidTripType
	}
}

func (t TripType) String() string { return string(t) }

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

// Fare is the caller-computed price; pricing rules live upstream.
type Fare struct {
	currency string
	amount   int64
}

func NewFare(currency string, amount int64) (Fare, error) {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if len(c) != 3 || !isASCIILetters(c) {
		return Fare{}, ErrInvalidCurrency
	}
	if amount < 0 {
		return Fare{}, ErrNegativeAmount
	}
	return Fare{currency: c, amount: amount}, nil
}

func (f Fare) Currency() string { return f.currency }
func (f Fare) Amount() int64    { return f.amount }

type Passenger struct {
	firstName   string
	lastName    string
	gender      *string
	nationality *string
	passportNo  *string
}

func NewPassenger(firstName, lastName string, gender, nationality, passportNo *string) (Passenger, error) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return Passenger{}, ErrEmptyName
	}
	if utf8.RuneCountInString(first) > MaxNameLength || utf8.RuneCountInString(last) > MaxNameLength {
		return Passenger{}, ErrFieldTooLong
	}

	p := Passenger{firstName: first, lastName: last}

	if v := trimmedOrNil(nationality); v != nil {
		n := strings.ToUpper(*v)
		if len(n) != 2 || !isASCIILetters(n) {
			return Passenger{}, ErrInvalidNationality
		}
		p.nationality = &n
	}

	var err error
	if p.gender, err = boundedOrNil(gender, MaxShortField); err != nil {
		return Passenger{}, err
	}
	if p.passportNo, err = boundedOrNil(passportNo, MaxShortField); err != nil {
		return Passenger{}, err
	}
	return p, nil
}

func (p Passenger) FirstName() string    { return p.firstName }
func (p Passenger) LastName() string     { return p.lastName }
func (p Passenger) Gender() *string      { return p.gender }
func (p Passenger) Nationality() *string { return p.nationality }
func (p Passenger) PassportNo() *string  { return p.passportNo }

type Contact struct {
	email *string
	phone *string
}

func NewContact(email, phone *string) (Contact, error) {
	e, err := boundedOrNil(email, MaxContactLength)
	if err != nil {
		return Contact{}, err
	}
	p, err := boundedOrNil(phone, MaxShortField)
	if err != nil {
		return Contact{}, err
	}
	return Contact{email: e, phone: p}, nil
}

func (c Contact) Email() *string { return c.email }
func (c Contact) Phone() *string { return c.phone }

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func boundedOrNil(s *string, maxRunes int) (*string, error) {
	t := trimmedOrNil(s)
	if t != nil && utf8.RuneCountInString(*t) > maxRunes {
		return nil, ErrFieldTooLong
	}
	return t, nil
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
