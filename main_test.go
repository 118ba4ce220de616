// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/strfem/gotruss/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/viper"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_cli01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli01. run and check commands")

	// check
	cmd := newRootCmd(viper.New())
	cmd.SetArgs([]string{"check", "data/bracket01.json"})
	if err := cmd.Execute(); err != nil {
		tst.Errorf("check failed:\n%v", err)
		return
	}

	// run with spreadsheet
	fn := filepath.Join(tst.TempDir(), "bracket01.xlsx")
	cmd = newRootCmd(viper.New())
	cmd.SetArgs([]string{"run", "data/bracket01.json", "--xlsx", fn, "--workers", "2"})
	if err := cmd.Execute(); err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	if _, err := os.Stat(fn); err != nil {
		tst.Errorf("spreadsheet was not written:\n%v", err)
	}
}

func Test_cli02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli02. settings from flags and environment")

	tst.Setenv("GOTRUSS_WORKERS", "3")
	v := viper.New()
	cmd := newRootCmd(v)
	cmd.SetArgs([]string{"check", "data/bar01.json", "--restol", "1e-6"})
	if err := cmd.Execute(); err != nil {
		tst.Errorf("check failed:\n%v", err)
		return
	}
	set := settings(v)
	chk.IntAssert(set.Nworkers, 3)
	chk.Float64(tst, "ResTol", 1e-17, set.ResTol, 1e-6)
	chk.Float64(tst, "CondMax", 1e-17, set.CondMax, 1e12)

	// tiny condmax turns well-posed model into singular one
	cmd = newRootCmd(viper.New())
	cmd.SetArgs([]string{"check", "data/bracket01.json", "--condmax", "0.5"})
	if err := cmd.Execute(); !errors.Is(err, errs.ErrSingular) {
		tst.Errorf("SingularSystemError expected. got %v", err)
	}
}

func Test_cli03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli03. invalid input")

	cmd := newRootCmd(viper.New())
	cmd.SetArgs([]string{"run", "data/does_not_exist.json"})
	if err := cmd.Execute(); err == nil {
		tst.Errorf("run should fail with missing file")
	}

	cmd = newRootCmd(viper.New())
	cmd.SetArgs([]string{"run"})
	if err := cmd.Execute(); err == nil {
		tst.Errorf("run should fail without model file")
	}

	fn := filepath.Join(tst.TempDir(), "missing.yaml")
	cmd = newRootCmd(viper.New())
	cmd.SetArgs([]string{"check", "data/bar01.json", "--config", fn})
	if err := cmd.Execute(); err == nil {
		tst.Errorf("check should fail with missing configuration file")
	}
}
