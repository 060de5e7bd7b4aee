/*
 * pycontract
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tabular

import (
	"io"

	"github.com/pyrv/pycontract"
)

/*
Eval is the subset of pycontract.Monitor this package depends on, kept
narrow so a caller can pass anything structurally compatible (e.g. a test
double) without importing the root package's full Monitor type.
*/
type Eval interface {
	Eval(event pycontract.Event)
	SetEventCount(n int)
	End()
}

/*
Drive reads every row from r, converts it to an event via convert, and
submits it to m.Eval - then calls m.End(). SetEventCount(0) is called
first so event numbers in diagnostics line up with CSV row numbers rather
than starting from wherever the monitor's counter happened to be.
*/
func Drive(m Eval, r *Reader, convert func(Row) pycontract.Event) error {
	m.SetEventCount(0)

	for {
		row, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		m.Eval(convert(row))
	}

	m.End()
	return nil
}
