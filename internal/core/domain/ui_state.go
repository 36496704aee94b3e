package domain

type Tab string

const (
	TabDoctors      Tab = "doctors"
	TabAppointments Tab = "appointments"
)

type UIState struct {
	Loading         bool    `json:"loading"`
	SelectedDoctor  *Doctor `json:"selectedDoctor"`
	ShowModal       bool    `json:"showModal"`
	ActiveTab       Tab     `json:"activeTab"`
	InsuranceFilter string  `json:"insuranceFilter"`
}

func (s UIState) Clone() UIState {
	if s.SelectedDoctor != nil {
		doctor := s.SelectedDoctor.Clone()
		s.SelectedDoctor = &doctor
	}
	return s
}

// State is a read-only snapshot of everything the store owns.
type State struct {
	Doctors      []Doctor      `json:"doctors"`
	Appointments []Appointment `json:"appointments"`
	UI           UIState       `json:"ui"`
}
