package main

var page = `<html>
<head>
  <title>EMA-8314 live readings</title>
  <style>
  body {
    background-color: black;
    color: white;
    font-family: monospace;
  }
  table {
    margin: auto;
    font-size: 3em;
    border-spacing: 20px;
  }
  .broken {
    color: #ff5555;
  }
  #stamp {
    text-align: center;
    color: #888;
  }
  </style>
</head>
<body>
  <table>
    <tr><th>ch</th><th>temp</th><th>sensor</th><th>out</th></tr>
    <tr id="ch0"><td>0</td><td>-</td><td>-</td><td>-</td></tr>
    <tr id="ch1"><td>1</td><td>-</td><td>-</td><td>-</td></tr>
    <tr id="ch2"><td>2</td><td>-</td><td>-</td><td>-</td></tr>
    <tr id="ch3"><td>3</td><td>-</td><td>-</td><td>-</td></tr>
  </table>
  <p id="stamp"></p>
  <script>
    var ws = new WebSocket("ws://" + location.host + "/stream");
    ws.onmessage = function(ev) {
      var rec = JSON.parse(ev.data);
      for (var i = 0; i < 4; i++) {
        var row = document.getElementById("ch" + i);
        var cells = row.getElementsByTagName("td");
        if (rec.Broken[i] || rec.Temps[i] == null) {
          cells[1].textContent = "NaN";
          row.className = "broken";
        } else {
          cells[1].textContent = rec.Temps[i].toFixed(1) + " " + rec.Units[i];
          row.className = "";
        }
        cells[2].textContent = rec.Broken[i] ? "disconnected" : "connected";
        cells[3].textContent = rec.Outputs[i] ? "on" : "off";
      }
      document.getElementById("stamp").textContent = rec.Time;
    };
  </script>
</body>
</html>`
