package tags

import "github.com/yohamta/donburi"

var (
	Contact = donburi.NewTag().SetName("Contact")
)
