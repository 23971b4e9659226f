// Command texeldemo is a minimal runnable demonstration of the
// windowing core and the dependency-object shell: it draws a bordered
// box with a title near the top-left corner of the terminal and exits
// on 'q'.
package main

import (
	"fmt"
	"os"

	"github.com/texelfw/texelfw"
	"github.com/texelfw/texelfw/driver/tcelldriver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "texeldemo:", err)
		os.Exit(1)
	}
}

func run() error {
	driver, err := tcelldriver.New()
	if err != nil {
		return err
	}
	defer driver.Close()

	fw := texelfw.NewFw()
	host := texelfw.NewWindowsHost()
	sh := texelfw.NewShell(fw, host)

	root := sh.NewRoot()
	box := sh.NewVisual()
	box.Set(sh.Parent, texelfw.HasProp(texelfw.DepObjProp(root)), fw)
	box.Set(sh.Bounds, texelfw.ValProp(sh.Rect.Box(texelfw.TLHW(2, 4, 8, 30))), fw)

	w := sh.Window(box)
	texelfw.DrawBorder(w, w.Area(), texelfw.NewBorder(), texelfw.AttrNormal, texelfw.ColorWhite, nil)
	texelfw.DrawText(w, 0, 2, " texeldemo ", texelfw.AttrBold, texelfw.ColorWhite, nil)

	return sh.Run(root, driver)
}
