package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
)

// versionCache memoizes parsed version objects so repeated minimum-
// version checks against the same installed versions parse each string
// once. Pacman versions (epoch:pkgver-pkgrel) follow the same ordering
// rules as Debian versions; pip versions follow PEP 440.
type versionCache struct {
	deb map[string]debversion.Version
	pep map[string]pep440.Version
}

func newVersionCache() *versionCache {
	return &versionCache{
		deb: map[string]debversion.Version{},
		pep: map[string]pep440.Version{},
	}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid pacman version: " + value).
			WithCause(err)
	}
	c.deb[value] = parsed
	return parsed, nil
}

func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid pip version: " + value).
			WithCause(err)
	}
	c.pep[value] = parsed
	return parsed, nil
}

// PacmanAtLeast reports whether installed is at least minimum under
// pacman's epoch:pkgver-pkgrel ordering.
func (c *versionCache) PacmanAtLeast(installed string, minimum string) (bool, error) {
	have, err := c.debVersion(installed)
	if err != nil {
		return false, err
	}
	want, err := c.debVersion(minimum)
	if err != nil {
		return false, err
	}
	return !have.LessThan(want), nil
}

// PipAtLeast reports whether installed is at least minimum under
// PEP 440 ordering.
func (c *versionCache) PipAtLeast(installed string, minimum string) (bool, error) {
	have, err := c.pepVersion(installed)
	if err != nil {
		return false, err
	}
	want, err := c.pepVersion(minimum)
	if err != nil {
		return false, err
	}
	return !have.LessThan(want), nil
}
