//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Evaluates the sample scene once and prints its CSS transforms.
func (Run) Scene() error {
	fmt.Println("Evaluating sample scene...")
	_, err := executeCmd("go", withArgs("run", ".", "-scene", "testdata/scene.toml", "-config", "testdata/c3d.toml"), withStream())
	return err
}

// Watches the sample scene and prints its CSS transforms after every change.
func (Run) Watch() error {
	mg.Deps(Build.Vet)
	_, err := executeCmd("go", withArgs("run", ".", "-scene", "testdata/scene.toml", "-watch"), withStream())
	return err
}
