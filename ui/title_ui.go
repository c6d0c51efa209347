package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/cryptcrawl/components"
	cfg "github.com/automoto/cryptcrawl/config"
	"github.com/automoto/cryptcrawl/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI *ebitenui.UI

	actions systems.MenuActions

	// Widget references for updates
	buttons     []*widget.Button
	recordLabel *widget.Label
	hintLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title screen. actions run when an option is clicked.
func NewTitleUI(actions systems.MenuActions) *TitleUI {
	tui := &TitleUI{actions: actions}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Menu.ButtonPadding)),
			widget.RowLayoutOpts.Spacing(cfg.Menu.MenuItemGap),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i := range cfg.Menu.MenuOptions {
		option := components.TitleOption(i)
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(180, 28),
			),
			widget.ButtonOpts.Image(tui.buttonImage()),
			widget.ButtonOpts.Text(systems.GetOptionLabel(option), &tui.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.Menu.TextColorNormal,
				Hover:   cfg.Menu.TextColorSelected,
				Pressed: cfg.Menu.TextColorSelected,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if act, ok := tui.actions[option]; ok {
					act()
				}
			}),
		)
		tui.buttons = append(tui.buttons, button)
		contentContainer.AddChild(button)
	}

	tui.recordLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: cfg.Bone,
		}),
	)
	contentContainer.AddChild(tui.recordLabel)

	tui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColorNormal,
		}),
	)
	contentContainer.AddChild(tui.hintLabel)

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Menu.ButtonColor)
	hover := image.NewNineSliceColor(cfg.Menu.ButtonHoverColor)
	pressed := image.NewNineSliceColor(cfg.Menu.ButtonPressColor)
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes labels to reflect the selection, volume and record
func (tui *TitleUI) UpdateUI(selected int, method components.InputMethod, record systems.SavedRecord) {
	for i, button := range tui.buttons {
		textWidget := button.Text()
		if textWidget == nil {
			continue
		}
		label := systems.GetOptionLabel(components.TitleOption(i))
		if i == selected {
			label = "> " + label + " <"
		}
		textWidget.Label = label
	}

	if record.Runs > 0 {
		tui.recordLabel.Label = fmt.Sprintf("Runs %d   Foes slain %d   Longest crawl %d steps",
			record.Runs, record.Victories, record.MostSteps)
	}
	tui.hintLabel.Label = systems.GetMenuHint(method)
}
