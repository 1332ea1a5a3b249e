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

package frontend

import (
	"github.com/alecthomas/repr"
	"github.com/dr0pdb/symtree/pkg/symbolic"
	log "github.com/sirupsen/logrus"
)

// MakeExpression parses the given text into an expression tree.
func MakeExpression(text string) (symbolic.Expression, error) {
	log.WithFields(log.Fields{"text": text}).Debug("symtree::frontend::MakeExpression; starting parse;")

	p := NewParser("frontend", text)
	ex, err := p.Parse()
	if err != nil {
		log.WithFields(log.Fields{"text": text, "err": err}).Debug("symtree::frontend::MakeExpression; parse failed;")
		return nil, err
	}

	log.WithFields(log.Fields{"text": text, "expression": repr.String(ex)}).Debug("symtree::frontend::MakeExpression; parsed;")
	return ex, nil
}
