package simulation

//go:generate go tool mockgen -destination=./mocks/drawer_mock.go -package=mocks . Drawer

// Drawer renders a target. It is called once per live target per frame, after Advance.
type Drawer interface {
	DrawTarget(t *Target)
}

// DrawerFunc adapts a plain function to Drawer.
type DrawerFunc func(t *Target)

// DrawTarget calls f(t).
func (f DrawerFunc) DrawTarget(t *Target) {
	f(t)
}
