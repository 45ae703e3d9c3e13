package particles

import (
	"fmt"
)

// InterpScheme selects the mass/acceleration interpolation kernel used by
// the mesh code the pool serves. The pool only uses it to derive the ghost
// zone width; the kernels themselves live elsewhere.
type InterpScheme int

const (
	InterpNone InterpScheme = iota
	NGP // nearest grid point
	CIC // cloud in cell
	TSC // triangular shaped cloud
)

// GhostSize returns the number of boundary ghost zones the scheme needs
// during interpolation. ok is false for unsupported schemes.
func (s InterpScheme) GhostSize() (size int, ok bool) {
	switch s {
	case NGP:
		return 0, true
	case CIC:
		return 1, true
	case TSC:
		return 1, true
	}
	return 0, false
}

func (s InterpScheme) String() string {
	switch s {
	case InterpNone:
		return "None"
	case NGP:
		return "NGP"
	case CIC:
		return "CIC"
	case TSC:
		return "TSC"
	}
	return fmt.Sprintf("InterpScheme(%d)", int(s))
}

// ParseInterpScheme converts a configuration-file scheme name into an
// InterpScheme.
func ParseInterpScheme(name string) (InterpScheme, error) {
	switch name {
	case "NGP":
		return NGP, nil
	case "CIC":
		return CIC, nil
	case "TSC":
		return TSC, nil
	}
	return InterpNone, fmt.Errorf(
		"Unrecognized interpolation scheme '%s'. "+
			"Accepted values are 'NGP', 'CIC', and 'TSC'.", name,
	)
}

// IntegScheme selects the orbit integrator the particles are advanced with.
type IntegScheme int

const (
	IntegNone IntegScheme = iota
	Euler
	KDK // kick-drift-kick
)

func (s IntegScheme) String() string {
	switch s {
	case IntegNone:
		return "None"
	case Euler:
		return "Euler"
	case KDK:
		return "KDK"
	}
	return fmt.Sprintf("IntegScheme(%d)", int(s))
}

// ParseIntegScheme converts a configuration-file integrator name into an
// IntegScheme.
func ParseIntegScheme(name string) (IntegScheme, error) {
	switch name {
	case "Euler":
		return Euler, nil
	case "KDK":
		return KDK, nil
	}
	return IntegNone, fmt.Errorf(
		"Unrecognized integration scheme '%s'. "+
			"Accepted values are 'Euler' and 'KDK'.", name,
	)
}

// InitScheme selects where the initial particle population comes from.
type InitScheme int

const (
	InitNone InitScheme = iota
	InitFunction
	InitRestart
	InitFromFile
)

func (s InitScheme) String() string {
	switch s {
	case InitNone:
		return "None"
	case InitFunction:
		return "Function"
	case InitRestart:
		return "Restart"
	case InitFromFile:
		return "FromFile"
	}
	return fmt.Sprintf("InitScheme(%d)", int(s))
}

// ParseInitScheme converts a configuration-file init method name into an
// InitScheme.
func ParseInitScheme(name string) (InitScheme, error) {
	switch name {
	case "Function":
		return InitFunction, nil
	case "Restart":
		return InitRestart, nil
	case "FromFile":
		return InitFromFile, nil
	}
	return InitNone, fmt.Errorf(
		"Unrecognized init method '%s'. "+
			"Accepted values are 'Function', 'Restart', and 'FromFile'.", name,
	)
}
