package config

const defaultLayout = `
layout:
  cols:
    - col:
        id: sidebar
        width: 30px
        min: 16
        rows:
          - row:
              id: about
              class: muted
              min: 3
              text: |
                Drag a splitter with the mouse.
                Tab moves between buttons,
                enter presses the focused one.
          - splitter: {thickness: 1}
          - row:
              id: counter
              height: 5px
              min: 3
              button: {label: Count, icon: "+", action: count}
          - splitter: {thickness: 1}
          - row:
              id: ping
              height: 5px
              min: 3
              button: {label: Log, icon: "*", action: log}
    - splitter: {thickness: 1}
    - col:
        id: main
        min: 20
        rows:
          - row:
              id: notes
              min: 4
              text: |
                Panes with a fixed extent keep it when the window resizes.
                Flexible panes share whatever is left.
          - splitter: {thickness: 1}
          - row:
              id: status
              class: muted
              height: 6px
              min: 2
              text: Splitter drags are traced when OTEL_EXPORTER_OTLP_ENDPOINT is set.
`

// Default returns the built-in demo layout.
func Default() *Document {
	doc, err := Parse([]byte(defaultLayout))
	if err != nil {
		panic("config: default layout: " + err.Error())
	}
	return doc
}
