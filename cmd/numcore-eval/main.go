// Copyright 2023 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// numcore-eval evaluates one element-wise comparison over two literal
// operands, e.g.
//
//	numcore-eval '[2,5,1]' '[2,7,1]'
//	numcore-eval -config numcore.toml '"abc"' '"abd"'
//	numcore-eval '50 cm' '5 m'
//
// Operands are JSON literals; a non-JSON operand is parsed as a unit
// literal ("50 cm") and, failing that, as a plain string.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/matrixorigin/numcore/pkg/config"
	"github.com/matrixorigin/numcore/pkg/container/value"
	"github.com/matrixorigin/numcore/pkg/function/operator"
	"github.com/matrixorigin/numcore/pkg/logutil"
)

var configFile = flag.String("config", "", "path to a TOML parameter file")

func parseOperand(ctx context.Context, s string) (value.Value, error) {
	var raw any
	if err := json.Unmarshal([]byte(s), &raw); err == nil {
		return value.FromGo(ctx, raw)
	}
	if u, err := value.ParseUnit(ctx, s); err == nil {
		return u, nil
	}
	return value.String(s), nil
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config file] <left> <right>\n", os.Args[0])
		os.Exit(2)
	}
	ctx := context.Background()

	params := config.NewDefaultParameters()
	if *configFile != "" {
		if err := config.LoadParametersFromFile(ctx, *configFile, params); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	logutil.SetupLogger(&params.Log)

	left, err := parseOperand(ctx, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	right, err := parseOperand(ctx, flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	env := operator.NewEnv(params)
	logutil.Debugf("evaluate unequal(%s, %s)", left, right)

	result, err := env.Unequal(ctx, left, right)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}
