package scheduling

import "errors"

// Erros devolvidos pelos repositórios. Os casos de uso os convertem em
// erros de negócio.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateCode     = errors.New("appointment code already in use")
	ErrSlotTaken         = errors.New("slot already taken")
	ErrDuplicateTemplate = errors.New("active template already exists for weekday")
	ErrDuplicateCRM      = errors.New("crm already registered")
	ErrDuplicateCPF      = errors.New("cpf already registered")
)
