package models

// ParticipantType определяет роль участника сессии.
// Владелец и член клуба тарифицируются по собственному тарифу,
// гость — только фиксированным сбором или гостевым пропуском.
type ParticipantType string

const (
	// ParticipantOwner — владелец (хост) сессии.
	ParticipantOwner ParticipantType = "owner"
	// ParticipantMember — член клуба, приглашённый в сессию.
	ParticipantMember ParticipantType = "member"
	// ParticipantGuest — гость без членства.
	ParticipantGuest ParticipantType = "guest"
)

// Participant представляет участника сессии после валидации.
// Для владельца и члена клуба заполняется Email, для гостя — GuestID.
type Participant struct {
	Type        ParticipantType `json:"type"`               // Роль участника
	Email       string          `json:"email,omitempty"`    // Почта члена клуба
	GuestID     string          `json:"guest_id,omitempty"` // Идентификатор гостя
	DisplayName string          `json:"display_name"`       // Отображаемое имя
}

// IsGuest сообщает, является ли участник гостем.
func (p Participant) IsGuest() bool {
	return p.Type == ParticipantGuest
}

// DummyParticipant используется для приёма участника из JSON-запроса
// до валидации и преобразования в Participant.
type DummyParticipant struct {
	Type        string `json:"type" validate:"required,oneof=owner member guest"` // Роль: owner, member или guest
	Email       string `json:"email,omitempty" validate:"omitempty,email"`       // Почта (для owner и member)
	GuestID     string `json:"guest_id,omitempty"`                               // Идентификатор гостя
	DisplayName string `json:"display_name,omitempty"`                           // Отображаемое имя
}

// ToParticipant преобразует валидированный DummyParticipant в доменную структуру.
func (d DummyParticipant) ToParticipant() Participant {
	return Participant{
		Type:        ParticipantType(d.Type),
		Email:       d.Email,
		GuestID:     d.GuestID,
		DisplayName: d.DisplayName,
	}
}

// ToParticipants преобразует список DTO участников в доменные структуры,
// сохраняя порядок следования.
func ToParticipants(dtos []DummyParticipant) []Participant {
	participants := make([]Participant, len(dtos))
	for i, d := range dtos {
		participants[i] = d.ToParticipant()
	}
	return participants
}
