// Package config reads chart documents (data plus options) from YAML or
// JSON and turns them into the inputs of plot.Line.
//
// A document looks like this; every option is optional:
//
//	labels: [Mon, Tue, Wed]
//	series:
//	  - name: visits
//	    meta: s1
//	    data: [1, 2, null, {value: 4, meta: peak}]
//	options:
//	  width: 400
//	  height: 240
//	  chartPadding: {top: 15, right: 15, bottom: 5, left: 10}   # or one number
//	  reverseData: false
//	  fullWidth: false
//	  showLine: true
//	  showArea: true
//	  areaBase: 0
//	  accuracy: 3
//	  lineSmooth: {type: monotone, fillHoles: false}            # or true / false / "step"
//	  axisX: {type: step, offset: 30, position: end}
//	  axisY: {type: auto, offset: 40, position: start, scaleMinSpace: 20, onlyInteger: false}
//	  series:
//	    visits: {lineSmooth: none, showArea: false}
//
// Series entries accept every input shape of package series: plain arrays,
// {value: …} wrappers, {x: …, y: …} points and {data: […]} series wrappers.
//
// Unknown keys are rejected. Document.Chart validates option values and
// reports them as errors; it never panics.
package config
