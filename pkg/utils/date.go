package utils

import "time"

func ConvertDateTimeToHumanReadableFormat(datetime int64) (string, error) {
	t := time.UnixMilli(datetime)
	location := time.FixedZone("WIB", 7*60*60)
	wibTime := t.In(location)
	outputFormat := "02 January 2006, 15:04 WIB"
	formattedDateTime := wibTime.Format(outputFormat)

	return formattedDateTime, nil
}
