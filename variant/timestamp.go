package variant

import (
	"fmt"
	"time"

	"github.com/rufus-stone/haystack/errs"
	"github.com/rufus-stone/haystack/needle"
)

// TimestampKind enumerates the on-wire timestamp encodings: Unix epoch
// at four resolutions, plus the legacy DOS/FAT 32-bit packed format.
type TimestampKind uint8

const (
	KindEpochSecs TimestampKind = iota
	KindEpochMillis
	KindEpochMicros
	KindEpochNanos
	KindDOSTime
)

func (k TimestampKind) String() string {
	switch k {
	case KindEpochSecs:
		return "EpochSecs"
	case KindEpochMillis:
		return "EpochMillis"
	case KindEpochMicros:
		return "EpochMicros"
	case KindEpochNanos:
		return "EpochNanos"
	case KindDOSTime:
		return "DOSTime"
	default:
		return "Unknown"
	}
}

// TimestampVariant is a concrete timestamp encoding: the underlying
// IntegerVariant that carries the bytes, plus the decoded instant.
type TimestampVariant struct {
	Kind  TimestampKind
	Inner IntegerVariant
	Value time.Time
}

// toDOSTime packs t into the DOS/FAT 32-bit bitmask: year offset from
// 1980 in bits 31-25, month in 24-21, day in 20-16, hour in 15-11,
// minute in 10-5, and two-second ticks in 4-0.
func toDOSTime(t time.Time) uint32 {
	year := uint32(t.Year() - 1980)
	month := uint32(t.Month())
	day := uint32(t.Day())
	hour := uint32(t.Hour())
	minute := uint32(t.Minute())
	second := uint32(t.Second())

	return year<<25 | month<<21 | day<<16 | hour<<11 | minute<<5 | second>>1
}

// fromDOSTime unpacks the DOS/FAT bitmask back into a time.Time in UTC.
// Returns an error if the packed calendar fields don't form a valid
// date (e.g. month 0 or day 31 in February), or if hour, minute or
// second is out of range (hour > 23, minute > 59, second > 58).
func fromDOSTime(value uint32) (time.Time, error) {
	year := int((value>>25)&0x7F) + 1980
	month := int((value >> 21) & 0x0F)
	day := int((value >> 16) & 0x1F)
	hour := int((value >> 11) & 0x1F)
	minute := int((value >> 5) & 0x3F)
	second := int((value & 0x1F) << 1)

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: DOS time month %d", errs.ErrInvalidEncoding, month)
	}

	if hour > 23 || minute > 59 || second > 58 {
		return time.Time{}, fmt.Errorf("%w: DOS time of day %02d:%02d:%02d", errs.ErrInvalidEncoding, hour, minute, second)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: DOS time calendar date %04d-%02d-%02d", errs.ErrInvalidEncoding, year, month, day)
	}

	return t, nil
}

// InterpretTimestamp returns every TimestampVariant whose decoder
// succeeds against a prefix of window: the four epoch resolutions for
// every integer variant unconditionally, plus DOS time additionally for
// the U32 forms (spec §4.4).
func InterpretTimestamp(window []byte) []TimestampVariant {
	var out []TimestampVariant

	for _, iv := range Interpret(window) {
		out = append(out, TimestampVariant{Kind: KindEpochSecs, Inner: iv, Value: time.Unix(iv.Value, 0).UTC()})
		out = append(out, TimestampVariant{Kind: KindEpochMillis, Inner: iv, Value: time.UnixMilli(iv.Value).UTC()})
		out = append(out, TimestampVariant{Kind: KindEpochMicros, Inner: iv, Value: time.UnixMicro(iv.Value).UTC()})
		out = append(out, TimestampVariant{Kind: KindEpochNanos, Inner: iv, Value: time.Unix(0, iv.Value).UTC()})

		switch iv.Kind {
		case KindU32LE, KindU32BE, KindU32Varint:
			t, err := fromDOSTime(uint32(iv.Value))
			if err == nil {
				out = append(out, TimestampVariant{Kind: KindDOSTime, Inner: iv, Value: t})
			}
		}
	}

	return out
}

// DiscombobulateTimestamp emits every TimestampVariant encoding of t:
// Unix epoch at all four resolutions, plus DOS time in its U32 forms.
func DiscombobulateTimestamp(t time.Time) []TimestampVariant {
	t = t.UTC()

	var out []TimestampVariant

	secs := t.Unix()
	for _, iv := range Discombobulate(secs) {
		out = append(out, TimestampVariant{Kind: KindEpochSecs, Inner: iv, Value: t})
	}

	millis := secs * 1000
	for _, iv := range Discombobulate(millis) {
		out = append(out, TimestampVariant{Kind: KindEpochMillis, Inner: iv, Value: t})
	}

	micros := millis * 1000
	for _, iv := range Discombobulate(micros) {
		out = append(out, TimestampVariant{Kind: KindEpochMicros, Inner: iv, Value: t})
	}

	nanos := micros * 1000
	for _, iv := range Discombobulate(nanos) {
		out = append(out, TimestampVariant{Kind: KindEpochNanos, Inner: iv, Value: t})
	}

	dos := toDOSTime(t)
	for _, iv := range Discombobulate(int64(dos)) {
		if !iv.IsU32() {
			continue
		}

		out = append(out, TimestampVariant{Kind: KindDOSTime, Inner: iv, Value: t})
	}

	return out
}

// Recombobulate lifts v back to a semantic needle.Timestamp.
func (v TimestampVariant) Recombobulate() (needle.Needle, error) {
	return needle.Timestamp{Value: v.Value}, nil
}

func (v TimestampVariant) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.Value.Format(time.RFC3339))
}
