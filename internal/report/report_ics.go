package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/leave"

	ics "github.com/arran4/golang-ical"
)

const calendarProductID = "-//ELMS//Leave Calendar//EN"

// buildCalendar renders one all-day event per leave. DTEND is exclusive, so it is the day after ToDate.
func buildCalendar(rows []leave.LeaveWithUser, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName("Approved leaves")

	for _, l := range rows {
		ev := cal.AddEvent(l.ID.String() + "@elms")
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(l.FromDate)
		ev.SetAllDayEndAt(l.ToDate.AddDate(0, 0, 1))
		ev.SetSummary(eventSummary(l))
		ev.SetDescription(fmt.Sprintf("%d day(s) of %s leave", l.TotalDays, l.LeaveType))
	}

	return cal.Serialize()
}

func eventSummary(l leave.LeaveWithUser) string {
	kind := "Leave"
	if l.LeaveType != "" {
		kind = strings.ToUpper(l.LeaveType[:1]) + l.LeaveType[1:] + " leave"
	}
	if l.UserName == nil || *l.UserName == "" {
		return kind
	}
	return *l.UserName + ": " + kind
}
