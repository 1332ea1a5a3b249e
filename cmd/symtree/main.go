/**
 * Copyright 2026 The Symtree Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dr0pdb/symtree/pkg/common"
	"github.com/dr0pdb/symtree/pkg/symbolic"
	"github.com/dr0pdb/symtree/pkg/symtree"
	log "github.com/sirupsen/logrus"
)

var (
	logFile            = false
	configFilePath     = "/etc/symtree.yaml"
	configFilePathFlag = flag.String("configFilePath", "", "overrides the default config file path")
	logLevelFlag       = flag.String("loglevel", "warning", "the level of log")
)

func main() {
	flag.Parse()
	log.SetFormatter(&log.JSONFormatter{})

	level, err := log.ParseLevel(*logLevelFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.SetLevel(level)

	log.Info("symtreemain::main::main; starting")
	conf := common.NewDefaultConfig()
	if *configFilePathFlag != "" {
		configFilePath = *configFilePathFlag
	}
	conf.LoadFromFile(configFilePath)
	if err := conf.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	if logFile {
		f, err := os.OpenFile("/tmp/logfile-symtree", os.O_WRONLY|os.O_CREATE, 0755)
		if err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	}

	engine := symtree.NewEngine("repl", symtree.WithConfig(conf))
	bindings := symbolic.Binding{}
	reader := bufio.NewReader(os.Stdin)

	var cmd string
	for {
		fmt.Printf("expr> ")
		cmd, err = reader.ReadString('\n')
		if err != nil {
			break
		}
		cmd = strings.Trim(cmd, " \n")

		if cmd == "exit" {
			break
		}
		if cmd == "" {
			continue
		}

		run(engine, bindings, cmd)
	}
}

// run handles a single repl command and prints the result.
//
//	x = 2          binds a value for use in later evaluations
//	diff x <expr>  prints the simplified derivative wrt x
//	<expr>         prints the simplified form, and its value when every
//	               variable is bound
func run(engine *symtree.Engine, bindings symbolic.Binding, cmd string) {
	ctx := context.Background()
	fields := strings.Fields(cmd)

	if len(fields) == 3 && fields[1] == "=" {
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			fmt.Printf("invalid value %q\n", fields[2])
			return
		}

		bindings[fields[0]] = val
		return
	}

	if len(fields) > 2 && fields[0] == "diff" {
		ex, err := engine.MakeExpression(ctx, strings.Join(fields[2:], " "))
		if err != nil {
			fmt.Println(err)
			return
		}

		d := engine.Simplify(ctx, engine.Differentiate(ctx, ex, fields[1]))
		fmt.Println(d.String())
		return
	}

	ex, err := engine.MakeExpression(ctx, cmd)
	if err != nil {
		fmt.Println(err)
		return
	}

	s := engine.Simplify(ctx, ex)
	fmt.Println(s.String())

	if bound(s, bindings) {
		val, err := engine.Evaluate(ctx, s, bindings)
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Println(val)
	}
}

// bound reports whether every variable of the expression has a binding.
func bound(ex symbolic.Expression, bindings symbolic.Binding) bool {
	for _, name := range ex.Variables() {
		if _, ok := bindings[name]; !ok {
			return false
		}
	}

	return true
}
