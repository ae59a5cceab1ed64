package converter

import (
	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) query.CreateAppointmentParams {
	return query.CreateAppointmentParams{
		UserID:  a.CustomerID(),
		SalonID: a.SalonID(),
		OwnerID: a.OwnerID(),
		Date:    a.Date(),
		Time:    a.Time(),
		Status:  a.Status().String(),
	}
}

func AppointmentFromInfra(row query.Appointment) *appointment.Appointment {
	return appointment.ReconstructAppointment(
		row.ID,
		row.UserID,
		row.SalonID,
		row.OwnerID,
		row.Date,
		row.Time,
		appointment.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
