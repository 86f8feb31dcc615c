package ports

import "context"

type InstalledPackage struct {
	Name    string
	Version string
}

// PackageProbePort reports whether a package is currently installed.
// The probe never mutates state. A returned error means the query
// itself failed and installation state is unknown; callers must not
// treat that as "not installed".
type PackageProbePort interface {
	Installed(ctx context.Context, name string) (InstalledPackage, bool, error)
}
