package message

import "time"

const TimeFormatString = time.DateTime

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.ParseInLocation(TimeFormatString, string(ts), time.Local)
}
