package mpctui

// Field is one labelled input of a Form.
type Field struct {
	Label string `mapstructure:"label"`
	Value string `mapstructure:"value"`
	Width int    `mapstructure:"width"`
}

// Form is the declarative description of the panel contents: a title, a row
// of input fields and the action buttons.
//
// usage:
//
//	Form{
//	    Title:   "Play/Record",
//	    Fields:  []Field{{Label: "Seq", Value: "1-(unused)"}, {Label: "BPM", Value: "120.0"}},
//	    Actions: []string{"TODO", "DONE"},
//	}.Declare(frame)
type Form struct {
	Title   string   `mapstructure:"title"`
	Fields  []Field  `mapstructure:"fields"`
	Actions []string `mapstructure:"actions"`
}

// Declare lays the form out in f.
func (form Form) Declare(f *Frame) {
	f.Title(form.Title)
	for _, field := range form.Fields {
		f.Input(field.Label, field.Value, field.Width)
	}
	f.Actions(form.Actions, f.ActiveAction())
}
